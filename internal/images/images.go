// Package images stores place photos and returns a public URL for each.
package images

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
)

// Folder is the prefix every uploaded image lives under.
const Folder = "imagenes"

var ErrUnknownURL = errors.New("url does not belong to this image store")

type Store interface {
	Upload(ctx context.Context, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}

// newName returns a fresh random name without extension.
func newName() string {
	return uuid.NewString()
}
