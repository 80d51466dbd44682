package imageutil

import (
	"errors"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// ErrUnsupportedType is returned for uploads whose extension is not in the
// whitelist.
var ErrUnsupportedType = errors.New("unsupported file type")

const (
	// MaxLogoSize bounds both dimensions of a processed logo.
	MaxLogoSize = 800
	// ThumbSize bounds both dimensions of the generated thumbnail.
	ThumbSize = 240
)

var allowedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".svg":  true,
}

// AllowedExt reports whether the filename carries a permitted extension.
func AllowedExt(name string) bool {
	return allowedExts[strings.ToLower(filepath.Ext(name))]
}

// IsSVG reports whether the filename is an SVG upload, which is stored
// verbatim instead of being re-encoded.
func IsSVG(name string) bool {
	return strings.ToLower(filepath.Ext(name)) == ".svg"
}

// SanitizeBaseName strips the path and extension from an uploaded filename
// and removes characters unsafe for use in a stored name. Path separators and
// parent references never survive.
func SanitizeBaseName(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '.':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "logo"
	}
	return b.String()
}

// ProcessLogo decodes the raster image at srcPath, downscales it to fit
// within MaxLogoSize (never upscaling), writes an optimized PNG to destPath
// and a ThumbSize thumbnail to thumbPath. Either both files are written or
// neither destination is usable; the caller only updates the brand record
// after a nil return.
func ProcessLogo(srcPath, destPath, thumbPath string) error {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return err
	}

	resized := imaging.Fit(img, MaxLogoSize, MaxLogoSize, imaging.Lanczos)
	if err := imaging.Save(resized, destPath,
		imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return err
	}

	thumb := imaging.Fit(resized, ThumbSize, ThumbSize, imaging.Lanczos)
	return imaging.Save(thumb, thumbPath,
		imaging.PNGCompressionLevel(png.BestCompression))
}
