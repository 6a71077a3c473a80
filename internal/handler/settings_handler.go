package handler

import (
	"errors"
	"net/http"

	"github.com/galerie/internal/service"
	"github.com/gin-gonic/gin"
)

// GetSlots returns the three fixed artwork slots.
func (a *API) GetSlots(c *gin.Context) {
	slots, err := a.settings.GetSlots()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load slots")
		return
	}
	c.JSON(http.StatusOK, slots)
}

// SetSlots replaces the three fixed artwork slots.
func (a *API) SetSlots(c *gin.Context) {
	var slots []*uint
	if !bindJSON(c, &slots, "invalid slots payload") {
		return
	}

	if err := a.settings.SetSlots(slots); err != nil {
		if errors.Is(err, service.ErrSlotsLength) {
			respondError(c, http.StatusBadRequest, "slots must hold exactly 3 entries")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to save slots")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetFeatured returns the featured artwork ids.
func (a *API) GetFeatured(c *gin.Context) {
	ids, err := a.settings.GetFeatured()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load featured artworks")
		return
	}
	c.JSON(http.StatusOK, ids)
}

// SetFeatured replaces the featured artwork ids.
func (a *API) SetFeatured(c *gin.Context) {
	var ids []uint
	if !bindJSON(c, &ids, "invalid featured payload") {
		return
	}

	if err := a.settings.SetFeatured(ids); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save featured artworks")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetFeaturedWorks returns the free-standing featured works.
func (a *API) GetFeaturedWorks(c *gin.Context) {
	works, err := a.settings.GetFeaturedWorks()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load featured works")
		return
	}
	c.JSON(http.StatusOK, works)
}

// SetFeaturedWorks replaces the free-standing featured works.
func (a *API) SetFeaturedWorks(c *gin.Context) {
	var works []service.FeaturedWork
	if !bindJSON(c, &works, "invalid featured works payload") {
		return
	}

	if err := a.settings.SetFeaturedWorks(works); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save featured works")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SetFeaturedWorksOrder replaces the featured works ordering.
func (a *API) SetFeaturedWorksOrder(c *gin.Context) {
	var ids []uint
	if !bindJSON(c, &ids, "invalid order payload") {
		return
	}

	if err := a.settings.SetFeaturedWorksOrder(ids); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save featured works order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetHours returns the opening-hours text lines.
func (a *API) GetHours(c *gin.Context) {
	lines, err := a.settings.GetHours()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load hours")
		return
	}
	c.JSON(http.StatusOK, lines)
}

// SetHours replaces the opening-hours text lines.
func (a *API) SetHours(c *gin.Context) {
	var lines []string
	if !bindJSON(c, &lines, "invalid hours payload") {
		return
	}

	if err := a.settings.SetHours(lines); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save hours")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
