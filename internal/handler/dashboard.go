package handler

import (
	"net/http"

	"github.com/Gnyfrt/miracotoelektronik/internal/store"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	Store *store.Store
}

// Index renders the landing page. The low-stock list is recomputed on every
// load; nothing about alerts is cached or persisted.
func (h *DashboardHandler) Index(c *gin.Context) {
	alerts, err := h.Store.LowStockAlerts()
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(http.StatusOK, "index.html", pageData(c, gin.H{
		"Alerts": alerts,
	}))
}
