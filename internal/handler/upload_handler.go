package handler

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/galerie/internal/imaging"
	"github.com/galerie/internal/storage"
	"github.com/gin-gonic/gin"
)

// maxUploadBytes is the per-file ceiling for image uploads.
const maxUploadBytes = 5 << 20

// UploadImage accepts one image, recompresses JPEG/PNG input and stores the
// result in the object store. Association with a record happens in a
// subsequent create or update call.
func (a *API) UploadImage(c *gin.Context) {
	if a.store == nil {
		respondError(c, http.StatusInternalServerError, "object storage not configured")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "no image provided")
		return
	}
	if file.Size > maxUploadBytes {
		respondError(c, http.StatusBadRequest, "image exceeds the 5 MiB limit")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "only image files are allowed")
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to read image")
		return
	}
	data, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	src.Close()
	if err != nil || int64(len(data)) > maxUploadBytes {
		respondError(c, http.StatusBadRequest, "image exceeds the 5 MiB limit")
		return
	}

	encoded, finalType, err := imaging.Recompress(data, contentType)
	if err != nil {
		respondError(c, http.StatusBadRequest, "unreadable image file")
		return
	}

	url, err := a.store.Upload(c.Request.Context(),
		storage.NewKey(extensionFor(finalType, file.Filename)),
		finalType,
		bytes.NewReader(encoded))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to store image")
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}

func extensionFor(contentType, filename string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return filepath.Ext(filename)
	}
}
