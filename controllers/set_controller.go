package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RohitValiveti/Fitness-Tracker/services"
)

type SetController struct {
	Sets *services.SetService
}

// Weight and reps bind through pointers so zero values still count as
// supplied.
type CreateSetInput struct {
	Weight *int `json:"weight" binding:"required"`
	Reps   *int `json:"reps" binding:"required"`
}

func (sc *SetController) Create(c *gin.Context) {
	var input CreateSetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set, err := sc.Sets.Create(*input.Weight, *input.Reps, nil)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, set.Serialize())
}

func (sc *SetController) CreateAssigned(c *gin.Context) {
	exerciseID, ok := parseIDParam(c, "exercise_id")
	if !ok {
		return
	}
	var input CreateSetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set, err := sc.Sets.Create(*input.Weight, *input.Reps, &exerciseID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, set.Serialize())
}

func (sc *SetController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "set_id")
	if !ok {
		return
	}
	set, err := sc.Sets.Get(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, set.Serialize())
}

type UpdateSetInput struct {
	Weight     *int  `json:"weight"`
	Reps       *int  `json:"reps"`
	ExerciseID *uint `json:"exercise_id"`
}

func (sc *SetController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "set_id")
	if !ok {
		return
	}
	var input UpdateSetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set, err := sc.Sets.Update(id, services.SetUpdate{
		Weight:      input.Weight,
		Repetitions: input.Reps,
		ExerciseID:  input.ExerciseID,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, set.Serialize())
}

func (sc *SetController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "set_id")
	if !ok {
		return
	}
	set, err := sc.Sets.Delete(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, set.Serialize())
}
