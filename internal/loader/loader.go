// Package loader handles image file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrEmptyImage is returned for image files without content.
var ErrEmptyImage = errors.New("image is empty")

// Loader handles loading image files from disk.
type Loader struct{}

// New creates a new image loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the complete image file. The size is not limited here,
// the memory space decides how much of the image fits.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	data, err := l.LoadFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("loading file %s: %w", path, err)
	}
	return data, nil
}

// LoadFromReader reads an image from a reader.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	return data, nil
}
