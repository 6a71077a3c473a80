package handler

import (
	"errors"
	"net/http"

	"github.com/galerie/internal/service"
	"github.com/gin-gonic/gin"
)

type contactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubmitContact stores a visitor message. The email notification is
// best-effort and never changes the response.
func (a *API) SubmitContact(c *gin.Context) {
	var payload contactPayload
	if !bindJSON(c, &payload, "invalid request") {
		return
	}

	item, err := a.contacts.Create(service.ContactInput{
		Name:    payload.Name,
		Email:   payload.Email,
		Message: payload.Message,
	})
	if err != nil {
		if errors.Is(err, service.ErrContactInvalid) {
			respondError(c, http.StatusBadRequest, "name, email and message are required")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to store message")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// ListContacts returns all messages, newest first.
func (a *API) ListContacts(c *gin.Context) {
	items, err := a.contacts.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load messages")
		return
	}
	c.JSON(http.StatusOK, items)
}
