package background

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNotFound is returned when an image identifier cannot be resolved.
var ErrNotFound = errors.New("background not found")

var extensions = []string{".png", ".jpg", ".jpeg", ".webp", ".bmp", ".tiff"}

// Resolver turns image identifiers into pixels.
type Resolver struct {
	ConfigDir string
	SystemDir string

	mu         sync.Mutex
	registered map[string]image.Image
	cache      cacheEntry
}

type cacheEntry struct {
	id   string
	size image.Point
	img  image.Image
}

// NewResolver creates a Resolver with the standard search directories.
func NewResolver() *Resolver {
	home, _ := os.UserHomeDir()
	return &Resolver{
		ConfigDir: filepath.Join(home, ".config", "freehand", "backgrounds"),
		SystemDir: "/usr/share/freehand/backgrounds",
	}
}

// Register makes img available under id.
func (r *Resolver) Register(id string, img image.Image) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.registered == nil {
		r.registered = map[string]image.Image{}
	}
	r.registered[id] = img
	if r.cache.id == id {
		r.cache = cacheEntry{}
	}
}

// Known reports whether id resolves without reading it.
func (r *Resolver) Known(id string) bool {
	if _, err := r.locate(id); err == nil {
		return true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.registered[id]
	_, builtin := builtins[id]
	return ok || builtin
}

// Resolve returns the image for id at w×h pixels.
// Order:
// 1. If id is a file path that exists, decode it.
// 2. Built-in procedural backgrounds.
// 3. Registered images.
// 4. ConfigDir, then SystemDir, trying each known extension.
func (r *Resolver) Resolve(id string, w, h int) (image.Image, error) {
	if id == "" {
		return nil, fmt.Errorf("empty background id: %w", ErrNotFound)
	}
	size := image.Pt(w, h)
	r.mu.Lock()
	if r.cache.img != nil && r.cache.id == id && r.cache.size == size {
		img := r.cache.img
		r.mu.Unlock()
		return img, nil
	}
	r.mu.Unlock()

	img, err := r.resolve(id, w, h)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.cache = cacheEntry{id: id, size: size, img: img}
	r.mu.Unlock()
	return img, nil
}

func (r *Resolver) resolve(id string, w, h int) (image.Image, error) {
	if st, err := os.Stat(id); err == nil && !st.IsDir() {
		return decodeScaled(id, w, h)
	}
	if gen, ok := builtins[id]; ok {
		return gen(w, h), nil
	}
	r.mu.Lock()
	img, ok := r.registered[id]
	r.mu.Unlock()
	if ok {
		return Scale(img, w, h), nil
	}
	path, err := r.locate(id)
	if err != nil {
		return nil, err
	}
	return decodeScaled(path, w, h)
}

func (r *Resolver) locate(id string) (string, error) {
	if st, err := os.Stat(id); err == nil && !st.IsDir() {
		return id, nil
	}
	names := []string{id}
	if filepath.Ext(id) == "" {
		names = names[:0]
		for _, ext := range extensions {
			names = append(names, id+ext)
		}
	}
	for _, dir := range []string{r.ConfigDir, r.SystemDir} {
		if dir == "" {
			continue
		}
		for _, n := range names {
			p := filepath.Join(dir, n)
			if _, err := os.Stat(p); err == nil {
				return p, nil
			}
		}
	}
	return "", fmt.Errorf("background %q: %w", id, ErrNotFound)
}

func decodeScaled(path string, w, h int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open background: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode background %s: %w", filepath.Base(path), err)
	}
	return Scale(img, w, h), nil
}

// Scale stretches img to exactly w×h using Catmull-Rom resampling. Images
// already at that size are converted without resampling.
func Scale(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
