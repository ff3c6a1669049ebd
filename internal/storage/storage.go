package storage

import (
	"context"
	"io"
)

// Uploader stores a binary asset and returns the public URL persisted
// against the company row. The core never keeps file bytes itself.
type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (url string, err error)
}
