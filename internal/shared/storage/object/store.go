package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for saving and retrieving binary objects,
// such as trained model bundles, by storage key.
type ObjectStore interface {
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	Save(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error)
}
