package handler

import (
	"net/http"
	"strings"

	"github.com/Gnyfrt/miracotoelektronik/internal/store"

	"github.com/gin-gonic/gin"
)

// AdminHandler manages the user accounts allowed through the login gate.
type AdminHandler struct {
	Store *store.Store
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Store.Users()
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	lastLogins, err := h.Store.LastLogins()
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	// Pre-format so the template can distinguish "never logged in".
	formatted := make(map[uint]string, len(lastLogins))
	for id, ts := range lastLogins {
		formatted[id] = ts.Format("2006-01-02 15:04")
	}
	c.HTML(http.StatusOK, "users.html", pageData(c, gin.H{
		"Users":      users,
		"LastLogins": formatted,
	}))
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	if username == "" || password == "" {
		flash(c, "Username and password are required")
		c.Redirect(http.StatusFound, "/users")
		return
	}

	if _, err := h.Store.CreateUser(username, password); err != nil {
		flash(c, "Could not create user (username taken?)")
		c.Redirect(http.StatusFound, "/users")
		return
	}
	c.Redirect(http.StatusFound, "/users")
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	// Deleting yourself would lock the session out mid-flight.
	if current := c.GetUint("userID"); current == id {
		flash(c, "You cannot delete the account you are logged in with")
		c.Redirect(http.StatusFound, "/users")
		return
	}

	if err := h.Store.DeleteUser(id); err != nil {
		notFoundOrFail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/users")
}
