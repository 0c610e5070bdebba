// Package gallery lists the images in the public gallery directory and attaches a blur
// placeholder to each one.
package gallery

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/trentd187/pingpong-league/internal/cache"
	"github.com/trentd187/pingpong-league/internal/models"
)

// DirName is the gallery directory inside the public directory, and the URL prefix of its files.
const DirName = "gallery-images"

// imageFile matches the extensions shown in the gallery; everything else (.DS_Store, notes) is ignored.
var imageFile = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp|svg)$`)

// maxWorkers bounds how many images are decoded at once on a cold cache.
const maxWorkers = 4

// Gallery reads images from one directory.
type Gallery struct {
	dir   string
	cache cache.Store
}

// New returns a Gallery for <publicDir>/gallery-images. A nil store disables caching.
func New(publicDir string, store cache.Store) *Gallery {
	if store == nil {
		store = cache.Nop{}
	}
	return &Gallery{dir: filepath.Join(publicDir, DirName), cache: store}
}

// Images returns the gallery in file name order. If the directory cannot be read the
// gallery is empty; the error is logged, not returned, so the page still renders.
func (g *Gallery) Images(ctx context.Context) []models.GalleryImage {
	entries, err := os.ReadDir(g.dir)
	if err != nil {
		log.Error().Err(err).Str("dir", g.dir).Msg("reading gallery images directory")
		return []models.GalleryImage{}
	}

	var files []os.DirEntry
	for _, e := range entries {
		if !e.IsDir() && imageFile.MatchString(e.Name()) {
			files = append(files, e)
		}
	}

	images := make([]models.GalleryImage, len(files))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(maxWorkers)
	for i, f := range files {
		images[i].Src = path.Join("/", DirName, f.Name())
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			images[i].BlurDataURL = g.placeholder(f)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Warn().Err(err).Msg("gallery placeholders interrupted")
		for i := range images {
			if images[i].BlurDataURL == "" {
				images[i].BlurDataURL = SolidPlaceholder()
			}
		}
	}
	return images
}

// placeholder returns the cached data URL for f, computing and caching it on a miss.
// Failures fall back to a solid placeholder.
func (g *Gallery) placeholder(f os.DirEntry) string {
	if strings.EqualFold(filepath.Ext(f.Name()), ".svg") {
		return SolidPlaceholder()
	}

	key, err := fingerprint(f)
	if err != nil {
		log.Warn().Err(err).Str("file", f.Name()).Msg("stat gallery image")
		return SolidPlaceholder()
	}
	if url, found, err := g.cache.Get(key); err == nil && found {
		return url
	} else if err != nil {
		log.Warn().Err(err).Str("file", f.Name()).Msg("placeholder cache read")
	}

	file, err := os.Open(filepath.Join(g.dir, f.Name()))
	if err != nil {
		log.Warn().Err(err).Str("file", f.Name()).Msg("open gallery image")
		return SolidPlaceholder()
	}
	defer file.Close()

	url, err := Placeholder(file)
	if err != nil {
		log.Warn().Err(err).Str("file", f.Name()).Msg("generating placeholder")
		return SolidPlaceholder()
	}
	if err := g.cache.Set(key, url); err != nil {
		log.Warn().Err(err).Str("file", f.Name()).Msg("placeholder cache write")
	}
	return url
}

// fingerprint changes whenever the file is replaced or edited.
func fingerprint(f os.DirEntry) (string, error) {
	info, err := f.Info()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%d:%d", f.Name(), info.Size(), info.ModTime().UnixNano()), nil
}
