package handler

import (
	"errors"
	"net/http"

	"github.com/galerie/internal/db"
	"github.com/galerie/internal/service"
	"github.com/gin-gonic/gin"
)

type exhibitionPayload struct {
	Title         string           `json:"title"`
	Location      string           `json:"location"`
	Year          string           `json:"year"`
	ImageURL      string           `json:"imageUrl"`
	Description   string           `json:"description"`
	Theme         string           `json:"theme"`
	GalleryImages []db.GalleryItem `json:"galleryImages"`
	VideoURL      string           `json:"videoUrl"`
}

func (p exhibitionPayload) toInput() service.ExhibitionInput {
	return service.ExhibitionInput{
		Title:         p.Title,
		Location:      p.Location,
		Year:          p.Year,
		ImageURL:      p.ImageURL,
		Description:   p.Description,
		Theme:         p.Theme,
		GalleryImages: p.GalleryImages,
		VideoURL:      p.VideoURL,
	}
}

// ListExhibitions returns all exhibitions in presentation order.
func (a *API) ListExhibitions(c *gin.Context) {
	items, err := a.exhibitions.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load exhibitions")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetExhibition returns one exhibition.
func (a *API) GetExhibition(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid exhibition id")
		return
	}

	item, err := a.exhibitions.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrExhibitionNotFound) {
			respondError(c, http.StatusNotFound, "exhibition not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load exhibition")
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateExhibition persists a new exhibition.
func (a *API) CreateExhibition(c *gin.Context) {
	var payload exhibitionPayload
	if !bindJSON(c, &payload, "invalid request") {
		return
	}

	item, err := a.exhibitions.Create(payload.toInput())
	if err != nil {
		if errors.Is(err, service.ErrExhibitionInvalid) {
			respondError(c, http.StatusBadRequest, "title and imageUrl are required")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create exhibition")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateExhibitionGallery replaces the gallery image list and
// garbage-collects removed blobs.
func (a *API) UpdateExhibitionGallery(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid exhibition id")
		return
	}

	var images []db.GalleryItem
	if !bindJSON(c, &images, "invalid gallery payload") {
		return
	}

	item, err := a.exhibitions.UpdateGallery(c.Request.Context(), id, images)
	if err != nil {
		if errors.Is(err, service.ErrExhibitionNotFound) {
			respondError(c, http.StatusNotFound, "exhibition not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to update gallery")
		return
	}
	c.JSON(http.StatusOK, item)
}

// ReorderExhibitions applies a full (id, order) mapping.
func (a *API) ReorderExhibitions(c *gin.Context) {
	var updates []service.OrderUpdate
	if !bindJSON(c, &updates, "invalid order payload") {
		return
	}

	if err := a.exhibitions.Reorder(updates); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to reorder exhibitions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteExhibition removes an exhibition and its blobs.
func (a *API) DeleteExhibition(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid exhibition id")
		return
	}

	if err := a.exhibitions.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrExhibitionNotFound) {
			respondError(c, http.StatusNotFound, "exhibition not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete exhibition")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
