package handler

import (
	"net/http"
	"strconv"

	"github.com/Gnyfrt/miracotoelektronik/internal/store"

	"github.com/gin-gonic/gin"
)

type PriceHandler struct {
	Store *store.Store
}

func (h *PriceHandler) List(c *gin.Context) {
	keyTypes, err := h.Store.KeyTypes()
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(http.StatusOK, "prices.html", pageData(c, gin.H{
		"KeyTypes": keyTypes,
	}))
}

// Update overwrites a key type's price and appends a ledger row. An
// unparsable price aborts the whole mutation; nothing is written.
func (h *PriceHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	newPrice, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		flash(c, "Invalid price value")
		c.Redirect(http.StatusFound, "/prices")
		return
	}

	if _, err := h.Store.ChangePrice(id, newPrice); err != nil {
		notFoundOrFail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/prices")
}

// History shows the newest ledger rows for a key type, newest first, with
// the ascending chart series rendered alongside.
func (h *PriceHandler) History(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	keyType, err := h.Store.KeyTypeByID(id)
	if err != nil {
		notFoundOrFail(c, err)
		return
	}
	events, err := h.Store.PriceHistory(id, store.HistoryLimit)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(http.StatusOK, "history.html", pageData(c, gin.H{
		"KeyType": keyType,
		"Events":  events,
	}))
}

// ChartData returns the ascending time/price series for the key type as JSON
// consumed by the history page chart.
func (h *PriceHandler) ChartData(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if _, err := h.Store.KeyTypeByID(id); err != nil {
		notFoundOrFail(c, err)
		return
	}
	labels, prices, err := h.Store.ChartSeries(id, store.HistoryLimit)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"labels": labels,
		"prices": prices,
	})
}
