package handler

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gnyfrt/miracotoelektronik/internal/store"
	"github.com/Gnyfrt/miracotoelektronik/pkg/imageutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BrandHandler struct {
	Store   *store.Store
	LogoDir string
}

func (h *BrandHandler) List(c *gin.Context) {
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
	c.HTML(http.StatusOK, "brands.html", pageData(c, gin.H{
		"Brands":   brands,
		"KeyTypes": keyTypes,
	}))
}

func (h *BrandHandler) Create(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name != "" {
		if _, err := h.Store.CreateBrand(name); err != nil {
			c.String(http.StatusInternalServerError, "internal error")
			return
		}
	}
	c.Redirect(http.StatusFound, "/brands")
}

func (h *BrandHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteBrand(id); err != nil {
		notFoundOrFail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/brands")
}

func (h *BrandHandler) AddKeyType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	label := strings.TrimSpace(c.PostForm("label"))
	if label != "" {
		if _, err := h.Store.CreateKeyType(id, label); err != nil {
			notFoundOrFail(c, err)
			return
		}
	}
	c.Redirect(http.StatusFound, "/brands")
}

func (h *BrandHandler) DeleteKeyType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteKeyType(id); err != nil {
		notFoundOrFail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/brands")
}

// UploadLogo stores a brand logo. SVG uploads are kept verbatim; raster
// uploads are re-encoded to a bounded PNG plus a thumbnail. The brand record
// changes only after every file write has succeeded.
func (h *BrandHandler) UploadLogo(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if _, err := h.Store.BrandByID(id); err != nil {
		notFoundOrFail(c, err)
		return
	}

	file, err := c.FormFile("logo")
	if err != nil || file.Filename == "" {
		flash(c, "No file selected")
		c.Redirect(http.StatusFound, "/brands")
		return
	}
	if !imageutil.AllowedExt(file.Filename) {
		flash(c, "Unsupported file type (png, jpg, jpeg, gif, svg only)")
		c.Redirect(http.StatusFound, "/brands")
		return
	}

	if err := os.MkdirAll(h.LogoDir, 0o755); err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	base := imageutil.SanitizeBaseName(file.Filename)

	if imageutil.IsSVG(file.Filename) {
		destName := fmt.Sprintf("%d_%s.svg", id, base)
		if err := c.SaveUploadedFile(file, filepath.Join(h.LogoDir, destName)); err != nil {
			c.String(http.StatusInternalServerError, "internal error")
			return
		}
		if err := h.Store.SetBrandLogo(id, destName); err != nil {
			notFoundOrFail(c, err)
			return
		}
		c.Redirect(http.StatusFound, "/brands")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	tempPath := filepath.Join(h.LogoDir, "tmp_"+uuid.NewString()+ext)
	if err := c.SaveUploadedFile(file, tempPath); err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	defer os.Remove(tempPath)

	destName := fmt.Sprintf("%d_%s.png", id, base)
	thumbName := "thumb_" + destName
	err = imageutil.ProcessLogo(tempPath,
		filepath.Join(h.LogoDir, destName),
		filepath.Join(h.LogoDir, thumbName))
	if err != nil {
		log.Printf("Logo processing failed for brand %d: %v", id, err)
		flash(c, "Could not process image")
		c.Redirect(http.StatusFound, "/brands")
		return
	}

	if err := h.Store.SetBrandLogo(id, destName); err != nil {
		notFoundOrFail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/brands")
}
