package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RohitValiveti/Fitness-Tracker/services"
)

type WorkoutController struct {
	Workouts *services.WorkoutService
}

func (wc *WorkoutController) List(c *gin.Context) {
	workouts, err := wc.Workouts.List()
	if err != nil {
		abortWithError(c, err)
		return
	}
	out := make([]map[string]interface{}, 0, len(workouts))
	for i := range workouts {
		out = append(out, workouts[i].SimpleSerialize())
	}
	c.JSON(http.StatusOK, gin.H{"workouts": out})
}

type CreateWorkoutInput struct {
	MuscleGroup string `json:"muscle_group" binding:"required"`
}

func (wc *WorkoutController) Create(c *gin.Context) {
	var input CreateWorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := wc.Workouts.Create(input.MuscleGroup)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout.Serialize())
}

func (wc *WorkoutController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "workout_id")
	if !ok {
		return
	}
	workout, err := wc.Workouts.Get(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout.Serialize())
}

type UpdateWorkoutInput struct {
	MuscleGroup *string    `json:"muscle_group"`
	TimeEnded   *time.Time `json:"time_ended"`
	UserID      *uint      `json:"user_id"`
}

func (wc *WorkoutController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "workout_id")
	if !ok {
		return
	}
	var input UpdateWorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := wc.Workouts.Update(id, services.WorkoutUpdate{
		MuscleGroup: input.MuscleGroup,
		TimeEnded:   input.TimeEnded,
		UserID:      input.UserID,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout.Serialize())
}

func (wc *WorkoutController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "workout_id")
	if !ok {
		return
	}
	workout, err := wc.Workouts.Delete(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout.Serialize())
}
