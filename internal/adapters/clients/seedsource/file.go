// Package seedsource implements ports.SeedSource for the CSV files the
// importer reads: a local file or an export served over HTTP.
package seedsource

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jsamuelsen11/device-usage-service/internal/ports"
)

var _ ports.SeedSource = (*File)(nil)

// File reads seed data from the local filesystem.
type File struct {
	path string
}

// NewFile creates a File source for path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Open opens the file. The context is only checked before opening.
func (f *File) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	return file, nil
}

// Describe returns the file path.
func (f *File) Describe() string {
	return f.path
}
