package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"worksight.com/worksight/infrastructure/filesystem"
	"worksight.com/worksight/web/common"
)

var photoContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// UploadPhotosHandler receives employee/visitor photos and stores them in
// the tenant's S3 bucket. Returns the stored keys so callers can attach
// them to records.
func UploadPhotosHandler(c *gin.Context) {
	// max 50 MB across the form
	if err := c.Request.ParseMultipartForm(50 << 20); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return
	}

	bucket := os.Getenv("WORKSIGHT_PHOTO_BUCKET")
	if bucket == "" {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("photo bucket not configured"))
		return
	}

	hostname := common.GetHostname(c.Request.Host)
	files := c.Request.MultipartForm.File["files"]

	uploaded := []string{}
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		contentType, ok := photoContentTypes[ext]
		if !ok {
			continue
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		key := fmt.Sprintf("%s/photos/%s%s", hostname, uuid.NewString(), ext)
		err = filesystem.WriteFile(c.Request.Context(), bucket, key, contentType, src)
		src.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		uploaded = append(uploaded, key)
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"message": fmt.Sprintf("%d files uploaded", len(uploaded)),
		"files":   uploaded,
	}))
}
