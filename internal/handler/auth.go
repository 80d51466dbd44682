package handler

import (
	"log"
	"net/http"

	"github.com/Gnyfrt/miracotoelektronik/internal/middleware"
	"github.com/Gnyfrt/miracotoelektronik/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Store *store.Store
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", pageData(c, nil))
}

// Login checks the submitted credentials against the user table. A match
// stores the user in the session and lands on the dashboard; a miss flashes
// an error and returns to the form with the session untouched.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.Store.UserByCredentials(username, password)
	if err != nil {
		if store.IsNotFound(err) {
			flash(c, "Invalid username or password")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionUserID, user.ID)
	session.Set(middleware.SessionUsername, user.Username)
	if err := session.Save(); err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	if err := h.Store.RecordLogin(user.ID, c.ClientIP()); err != nil {
		log.Printf("Failed to record login for user %d: %v", user.ID, err)
	}

	c.Redirect(http.StatusFound, "/")
}

// Logout clears the whole session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		log.Printf("Failed to clear session on logout: %v", err)
	}
	c.Redirect(http.StatusFound, "/login")
}
