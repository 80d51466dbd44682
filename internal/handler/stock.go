package handler

import (
	"net/http"

	"github.com/Gnyfrt/miracotoelektronik/internal/store"

	"github.com/gin-gonic/gin"
)

type StockHandler struct {
	Store *store.Store
}

func (h *StockHandler) List(c *gin.Context) {
	items, err := h.Store.StockItems()
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	brands, err := h.Store.Brands()
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	keyTypes, err := h.Store.KeyTypes()
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(http.StatusOK, "stock.html", pageData(c, gin.H{
		"Items":    items,
		"Brands":   brands,
		"KeyTypes": keyTypes,
	}))
}

// Add increments the existing (brand, key type) row or creates it. The
// submitted threshold always overwrites the stored one.
func (h *StockHandler) Add(c *gin.Context) {
	brandID, ok1 := formInt(c, "brand_id")
	keyTypeID, ok2 := formInt(c, "keytype_id")
	quantity, ok3 := formInt(c, "quantity")
	threshold, ok4 := formInt(c, "threshold")
	if !ok1 || !ok2 || !ok3 || !ok4 || brandID < 0 || keyTypeID < 0 {
		flash(c, "Invalid stock input")
		c.Redirect(http.StatusFound, "/stock")
		return
	}

	_, err := h.Store.AddOrIncrementStock(uint(brandID), uint(keyTypeID), quantity, threshold)
	if err != nil {
		notFoundOrFail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/stock")
}

// Withdraw decrements a stock item, clamped at zero.
func (h *StockHandler) Withdraw(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	quantity, ok := formInt(c, "quantity")
	if !ok {
		flash(c, "Invalid quantity")
		c.Redirect(http.StatusFound, "/stock")
		return
	}

	if _, err := h.Store.WithdrawStock(id, quantity); err != nil {
		notFoundOrFail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/stock")
}
