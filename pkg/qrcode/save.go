package qrcode

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// SaveImage encodes img to path, inferring the format from the file
// extension. Filesystem and encode failures wrap ErrIO.
func SaveImage(img image.Image, path string) error {
	var encode func(f *os.File) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, img) }
	case ".jpg", ".jpeg":
		encode = func(f *os.File) error { return jpeg.Encode(f, img, &jpeg.Options{Quality: 90}) }
	case ".gif":
		encode = func(f *os.File) error { return gif.Encode(f, img, nil) }
	default:
		return fmt.Errorf("%w: unsupported image format %q", ErrIO, filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: failed to save image: %s", ErrIO, err.Error())
	}

	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("%w: failed to save image: %s", ErrIO, err.Error())
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: failed to save image: %s", ErrIO, err.Error())
	}
	return nil
}
