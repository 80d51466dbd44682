package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Gnyfrt/miracotoelektronik/config"
	"github.com/Gnyfrt/miracotoelektronik/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// flash queues a one-shot message shown on the next rendered page.
func flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		log.Printf("Failed to save session flash: %v", err)
	}
}

// takeFlashes drains and returns the queued messages.
func takeFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		if err := session.Save(); err != nil {
			log.Printf("Failed to save session after draining flashes: %v", err)
		}
	}
	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}

// pageData assembles the fields every template expects.
func pageData(c *gin.Context, extra gin.H) gin.H {
	data := gin.H{
		"SiteName": config.AppConfig.Site.Name,
		"Flashes":  takeFlashes(c),
		"Username": c.GetString("username"),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// paramID parses the :id route parameter.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "not found")
		return 0, false
	}
	return uint(id), true
}

// notFoundOrFail writes a 404 for missing rows and a 500 for anything else.
func notFoundOrFail(c *gin.Context, err error) {
	if store.IsNotFound(err) {
		c.String(http.StatusNotFound, "not found")
		return
	}
	c.String(http.StatusInternalServerError, "internal error")
}

// formInt parses a required integer form field.
func formInt(c *gin.Context, field string) (int, bool) {
	v, err := strconv.Atoi(c.PostForm(field))
	if err != nil {
		return 0, false
	}
	return v, true
}
