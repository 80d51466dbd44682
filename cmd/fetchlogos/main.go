// Command fetchlogos pre-populates the logo directory with SVG icons from
// the simpleicons CDN. It runs offline from the web process: one request per
// brand, sequential, and a failed brand never stops the batch.
package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Gnyfrt/miracotoelektronik/pkg/database"
	"github.com/Gnyfrt/miracotoelektronik/pkg/slugify"
)

const cdnBase = "https://cdn.simpleicons.org/"

var httpClient = &http.Client{Timeout: 15 * time.Second}

// loadBrandNames reads one brand name per line, skipping blanks and
// # comments. Falls back to the seed brand list when the file is absent.
func loadBrandNames(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return database.SeedBrandNames
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		log.Printf("Error reading %s: %v", path, err)
	}
	if len(names) == 0 {
		return database.SeedBrandNames
	}
	return names
}

// fetchSlug returns the SVG body for a slug, or nil when the CDN has no icon
// for it or the request fails.
func fetchSlug(base, slug string) []byte {
	resp, err := httpClient.Get(base + slug)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}
	if !strings.Contains(resp.Header.Get("Content-Type"), "svg") {
		return nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}
	return body
}

func main() {
	listFile := flag.String("list", "static/logos_to_fetch.txt", "file with one brand name per line")
	outDir := flag.String("out", "static/logos", "directory to write SVG files to")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create %s: %v", *outDir, err)
	}

	names := loadBrandNames(*listFile)
	var ok, missed int
	for _, name := range names {
		slug := slugify.Slug(name)
		svg := fetchSlug(cdnBase, slug)
		if svg == nil {
			log.Printf("%s (%s): not found or error", name, slug)
			missed++
			continue
		}
		path := filepath.Join(*outDir, slug+".svg")
		if err := os.WriteFile(path, svg, 0o644); err != nil {
			log.Printf("%s: write failed: %v", name, err)
			missed++
			continue
		}
		log.Printf("%s -> %s", name, path)
		ok++
	}
	log.Printf("Done: %d fetched, %d skipped.", ok, missed)
}
