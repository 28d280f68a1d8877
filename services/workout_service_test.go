package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RohitValiveti/Fitness-Tracker/models"
)

func TestCreateWorkoutValidation(t *testing.T) {
	workouts := NewWorkoutService(newTestDB(t))

	_, err := workouts.Create("")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = workouts.Create("   ")
	assert.ErrorIs(t, err, ErrValidation)

	workout, err := workouts.Create("legs")
	require.NoError(t, err)
	assert.Equal(t, "legs", workout.MuscleGroup)
	assert.False(t, workout.TimeStarted.IsZero())
	assert.Nil(t, workout.TimeEnded)
}

func TestWorkoutUpdatePatchesOnlySuppliedFields(t *testing.T) {
	db := newTestDB(t)
	workouts := NewWorkoutService(db)
	owner := seedUser(t, db, "rv@example.com")

	workout, err := workouts.Create("legs")
	require.NoError(t, err)

	ended := time.Now()
	updated, err := workouts.Update(workout.ID, WorkoutUpdate{TimeEnded: &ended})
	require.NoError(t, err)
	assert.Equal(t, "legs", updated.MuscleGroup)
	require.NotNil(t, updated.TimeEnded)

	group := "back"
	updated, err = workouts.Update(workout.ID, WorkoutUpdate{MuscleGroup: &group, UserID: &owner.ID})
	require.NoError(t, err)
	assert.Equal(t, "back", updated.MuscleGroup)
	require.NotNil(t, updated.UserID)
	assert.Equal(t, owner.ID, *updated.UserID)

	empty := ""
	_, err = workouts.Update(workout.ID, WorkoutUpdate{MuscleGroup: &empty})
	assert.ErrorIs(t, err, ErrValidation)

	missing := uint(9999)
	_, err = workouts.Update(workout.ID, WorkoutUpdate{UserID: &missing})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWorkoutCascadeDelete(t *testing.T) {
	db := newTestDB(t)
	workouts := NewWorkoutService(db)
	exercises := NewExerciseService(db)
	sets := NewSetService(db)

	workout, err := workouts.Create("legs")
	require.NoError(t, err)

	squat, err := exercises.Create("squat", "quad", &workout.ID)
	require.NoError(t, err)
	lunge, err := exercises.Create("lunge", "glute", &workout.ID)
	require.NoError(t, err)

	set1, err := sets.Create(135, 5, &squat.ID)
	require.NoError(t, err)
	_, err = sets.Create(155, 3, &squat.ID)
	require.NoError(t, err)
	_, err = sets.Create(0, 12, &lunge.ID)
	require.NoError(t, err)

	// Unrelated rows that must survive the cascade.
	other, err := workouts.Create("push")
	require.NoError(t, err)
	bench, err := exercises.Create("bench", "chest", &other.ID)
	require.NoError(t, err)
	_, err = sets.Create(185, 5, &bench.ID)
	require.NoError(t, err)

	deleted, err := workouts.Delete(workout.ID)
	require.NoError(t, err)
	assert.Equal(t, workout.ID, deleted.ID)
	assert.Len(t, deleted.Exercises, 2)

	var workoutCount, exerciseCount, setCount int64
	require.NoError(t, db.Model(&models.Workout{}).Count(&workoutCount).Error)
	require.NoError(t, db.Model(&models.Exercise{}).Count(&exerciseCount).Error)
	require.NoError(t, db.Model(&models.Set{}).Count(&setCount).Error)
	assert.EqualValues(t, 1, workoutCount)
	assert.EqualValues(t, 1, exerciseCount)
	assert.EqualValues(t, 1, setCount)

	_, err = workouts.Get(workout.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = exercises.Get(squat.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = sets.Get(set1.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The other workout's subtree is untouched.
	_, err = exercises.Get(bench.ID)
	assert.NoError(t, err)
}

func TestDeleteWorkoutNotFound(t *testing.T) {
	workouts := NewWorkoutService(newTestDB(t))

	_, err := workouts.Delete(42)
	assert.ErrorIs(t, err, ErrNotFound)
}
