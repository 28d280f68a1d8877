package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RohitValiveti/Fitness-Tracker/models"
)

func TestCreateExerciseUnassigned(t *testing.T) {
	exercises := NewExerciseService(newTestDB(t))

	exercise, err := exercises.Create("plank", "core", nil)
	require.NoError(t, err)
	assert.Nil(t, exercise.WorkoutID)

	_, err = exercises.Create("", "core", nil)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = exercises.Create("plank", "", nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateAssignedExerciseUnknownWorkout(t *testing.T) {
	exercises := NewExerciseService(newTestDB(t))

	missing := uint(7)
	_, err := exercises.Create("squat", "quad", &missing)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAssignExerciseToWorkout(t *testing.T) {
	db := newTestDB(t)
	workouts := NewWorkoutService(db)
	exercises := NewExerciseService(db)

	workout, err := workouts.Create("legs")
	require.NoError(t, err)

	exercise, err := exercises.Create("squat", "quad", nil)
	require.NoError(t, err)

	updated, err := exercises.Update(exercise.ID, ExerciseUpdate{WorkoutID: &workout.ID})
	require.NoError(t, err)
	require.NotNil(t, updated.WorkoutID)
	assert.Equal(t, workout.ID, *updated.WorkoutID)

	missing := uint(9999)
	_, err = exercises.Update(exercise.ID, ExerciseUpdate{WorkoutID: &missing})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteExerciseCascadesSets(t *testing.T) {
	db := newTestDB(t)
	exercises := NewExerciseService(db)
	sets := NewSetService(db)

	exercise, err := exercises.Create("squat", "quad", nil)
	require.NoError(t, err)
	set, err := sets.Create(135, 5, &exercise.ID)
	require.NoError(t, err)

	_, err = exercises.Delete(exercise.ID)
	require.NoError(t, err)

	_, err = sets.Get(set.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Set{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
