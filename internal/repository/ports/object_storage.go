package ports

import (
	"context"
	"io"
)

// ObjectStorage stores uploaded pet photos and returns a URL the stored
// object can be fetched from.
type ObjectStorage interface {
	Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error)
}
