//go:build !cgo && !windows

package clipboard

import "image"

func initBackend() error { return errCGODisabled }

// WriteImage always fails in builds without cgo.
func WriteImage(image.Image) error {
	return ensureInit()
}
