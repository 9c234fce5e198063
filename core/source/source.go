// Package source resolves input locations to readable streams.
//
// Plain paths are opened from the local filesystem. Locations of the form
// "s3://bucket/object" are streamed from object storage through a
// storage.Client.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"csv-differ/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrNoStorage is returned for an s3:// location when the Opener has no
// storage client.
var ErrNoStorage = errors.New("object storage is not configured")

// Opener opens an input location for reading.
type Opener interface {
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}

type opener struct {
	client storage.Client
}

// NewOpener returns an Opener that reads local files and, when client is
// non-nil, objects addressed as s3://bucket/object.
func NewOpener(client storage.Client) Opener {
	return &opener{client: client}
}

func (o *opener) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	bucket, object, ok := storage.ParseURL(location)
	if !ok {
		f, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", location, err)
		}
		return f, nil
	}

	if o.client == nil {
		return nil, fmt.Errorf("failed to open %s: %w", location, ErrNoStorage)
	}
	obj, err := o.client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", location, err)
	}
	return obj, nil
}

// IsRemote reports whether location addresses object storage.
func IsRemote(location string) bool {
	_, _, ok := storage.ParseURL(location)
	return ok
}
