package handler

import (
	"net/http"

	"github.com/galerie/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks the credentials and attaches the admin identity to the
// session. The response does not reveal whether the username existed.
func (a *API) Login(c *gin.Context) {
	var payload loginPayload
	if !bindJSON(c, &payload, "invalid request") {
		return
	}

	var user db.User
	if err := a.db.Where("username = ?", payload.Username).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	session := sessions.Default(c)
	session.Set("admin", true)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "session save failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the session. Idempotent.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "session save failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AdminRequired gates mutating routes behind the single admin identity. A
// missing session, a missing flag and a non-matching username all get the
// same response.
func (a *API) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		admin, _ := session.Get("admin").(bool)
		username, _ := session.Get("username").(string)
		if !admin || username == "" || username != a.adminUser {
			respondError(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}
