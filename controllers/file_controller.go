package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RohitValiveti/Fitness-Tracker/services"
)

type FileController struct {
	Files *services.FileService
}

func (fc *FileController) List(c *gin.Context) {
	user := currentUser(c)
	files, err := fc.Files.ListForUser(user.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	out := make([]map[string]interface{}, 0, len(files))
	for i := range files {
		out = append(out, files[i].SimpleSerialize())
	}
	c.JSON(http.StatusOK, gin.H{"health_files": out})
}

// Upload takes a multipart form with a display name and the file content,
// pushes the blob to the object store, and records it for the caller.
func (fc *FileController) Upload(c *gin.Context) {
	user := currentUser(c)

	name := c.PostForm("name")
	header, err := c.FormFile("content")
	if name == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "did not supply name and/or content"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	record, err := fc.Files.Upload(
		c.Request.Context(),
		user,
		name,
		header.Filename,
		header.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record.Serialize())
}

// Get returns a single file record, owner only.
func (fc *FileController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "file_id")
	if !ok {
		return
	}
	file, err := fc.Files.Get(id, currentUser(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, file.SimpleSerialize())
}
