package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxUploadBytes caps one uploaded image at 10 MB.
const maxUploadBytes = 10 << 20

// UploadImageHandler stores one multipart image (proof photos, site photos,
// certificates) and returns its URL.
func (hb *HandlerBundle) UploadImageHandler(c *gin.Context) {
	folder := c.DefaultPostForm("folder", "uploads")

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file", "details": err.Error()})
		return
	}
	if file.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "图片不能超过10MB"})
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer src.Close()
	data, err := io.ReadAll(io.LimitReader(src, maxUploadBytes))
	if err != nil {
		respondError(c, err)
		return
	}

	url, err := hb.Storage.UploadImage(c.Request.Context(), folder, uuid.New().String(), data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
