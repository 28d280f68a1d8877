package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RohitValiveti/Fitness-Tracker/services"
)

type ExerciseController struct {
	Exercises *services.ExerciseService
}

func (ec *ExerciseController) List(c *gin.Context) {
	exercises, err := ec.Exercises.List()
	if err != nil {
		abortWithError(c, err)
		return
	}
	out := make([]map[string]interface{}, 0, len(exercises))
	for i := range exercises {
		out = append(out, exercises[i].Serialize())
	}
	c.JSON(http.StatusOK, gin.H{"exercises": out})
}

type CreateExerciseInput struct {
	ExerciseName string `json:"exercise_name" binding:"required"`
	Muscle       string `json:"muscle" binding:"required"`
}

// Create stores an exercise with no owning workout.
func (ec *ExerciseController) Create(c *gin.Context) {
	var input CreateExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exercise, err := ec.Exercises.Create(input.ExerciseName, input.Muscle, nil)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exercise.Serialize())
}

// CreateAssigned stores an exercise under the workout named in the path.
func (ec *ExerciseController) CreateAssigned(c *gin.Context) {
	workoutID, ok := parseIDParam(c, "workout_id")
	if !ok {
		return
	}
	var input CreateExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exercise, err := ec.Exercises.Create(input.ExerciseName, input.Muscle, &workoutID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exercise.Serialize())
}

func (ec *ExerciseController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "exercise_id")
	if !ok {
		return
	}
	exercise, err := ec.Exercises.Get(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise.Serialize())
}

type UpdateExerciseInput struct {
	ExerciseName *string `json:"exercise_name"`
	Muscle       *string `json:"muscle"`
	WorkoutID    *uint   `json:"workout_id"`
}

func (ec *ExerciseController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "exercise_id")
	if !ok {
		return
	}
	var input UpdateExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exercise, err := ec.Exercises.Update(id, services.ExerciseUpdate{
		ExerciseName: input.ExerciseName,
		Muscle:       input.Muscle,
		WorkoutID:    input.WorkoutID,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise.Serialize())
}

func (ec *ExerciseController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "exercise_id")
	if !ok {
		return
	}
	exercise, err := ec.Exercises.Delete(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise.Serialize())
}
