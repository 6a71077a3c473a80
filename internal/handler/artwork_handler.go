package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/galerie/internal/service"
	"github.com/gin-gonic/gin"
)

type artworkPayload struct {
	Title       string `json:"title"`
	Technique   string `json:"technique"`
	Year        string `json:"year"`
	Dimensions  string `json:"dimensions"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
}

func (p artworkPayload) toInput() service.ArtworkInput {
	return service.ArtworkInput{
		Title:       p.Title,
		Technique:   p.Technique,
		Year:        p.Year,
		Dimensions:  p.Dimensions,
		Description: p.Description,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
	}
}

// ListArtworks returns visible artworks in presentation order.
func (a *API) ListArtworks(c *gin.Context) {
	items, err := a.artworks.ListVisible()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load artworks")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetArtwork returns one artwork.
func (a *API) GetArtwork(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid artwork id")
		return
	}

	item, err := a.artworks.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrArtworkNotFound) {
			respondError(c, http.StatusNotFound, "artwork not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load artwork")
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateArtwork persists a new artwork from an already-uploaded image.
func (a *API) CreateArtwork(c *gin.Context) {
	var payload artworkPayload
	if !bindJSON(c, &payload, "invalid request") {
		return
	}

	item, err := a.artworks.Create(payload.toInput())
	if err != nil {
		if errors.Is(err, service.ErrArtworkInvalid) {
			respondError(c, http.StatusBadRequest, "title, technique, year and imageUrl are required")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create artwork")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// DeleteArtwork removes an artwork and its blobs.
func (a *API) DeleteArtwork(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid artwork id")
		return
	}

	if err := a.artworks.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrArtworkNotFound) {
			respondError(c, http.StatusNotFound, "artwork not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete artwork")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ReorderArtworks applies a full (id, order) mapping.
func (a *API) ReorderArtworks(c *gin.Context) {
	var updates []service.OrderUpdate
	if !bindJSON(c, &updates, "invalid order payload") {
		return
	}

	if err := a.artworks.Reorder(updates); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to reorder artworks")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AddArtworkImages appends 1-3 additional images to an artwork.
func (a *API) AddArtworkImages(c *gin.Context) {
	if a.store == nil {
		respondError(c, http.StatusInternalServerError, "object storage not configured")
		return
	}

	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid artwork id")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid multipart form")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		respondError(c, http.StatusBadRequest, "at least one image is required")
		return
	}
	if len(files) > service.MaxAdditionalImages {
		respondError(c, http.StatusBadRequest, "at most 3 images per artwork")
		return
	}

	batch := make([][]byte, 0, len(files))
	for _, file := range files {
		if file.Size > maxUploadBytes {
			respondError(c, http.StatusBadRequest, "image exceeds the 5 MiB limit")
			return
		}
		if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
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
		batch = append(batch, data)
	}

	urls, err := a.artworks.AppendAdditionalImages(c.Request.Context(), id, batch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArtworkNotFound):
			respondError(c, http.StatusNotFound, "artwork not found")
		case errors.Is(err, service.ErrTooManyImages):
			respondError(c, http.StatusBadRequest, "at most 3 images per artwork")
		case errors.Is(err, service.ErrArtworkInvalid):
			respondError(c, http.StatusBadRequest, "unreadable image file")
		default:
			respondError(c, http.StatusInternalServerError, "failed to store images")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"additionalImages": urls})
}
