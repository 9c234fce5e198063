package diff

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"csv-differ/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const csvContentType = "text/csv"

// Publisher uploads output files to object storage.
type Publisher struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewPublisher creates a publisher writing under bucket/prefix.
func NewPublisher(client storage.Client, bucket, prefix string, logger *zap.Logger) *Publisher {
	return &Publisher{client: client, bucket: bucket, prefix: prefix, logger: logger}
}

// ObjectName returns the object name a file is published under for runID.
func (p *Publisher) ObjectName(runID, file string) string {
	return path.Join(p.prefix, runID, filepath.Base(file))
}

// Publish uploads every file under <prefix>/<runID>/ and returns the
// object names. The bucket is created when missing.
func (p *Publisher) Publish(ctx context.Context, runID string, files []string) ([]string, error) {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", p.bucket, err)
	}
	if !exists {
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", p.bucket, err)
		}
		p.logger.Info("Created publish bucket", zap.String("bucket", p.bucket))
	}

	objects := make([]string, 0, len(files))
	for _, file := range files {
		name := p.ObjectName(runID, file)
		if err := p.upload(ctx, file, name); err != nil {
			return objects, err
		}
		objects = append(objects, name)
	}
	return objects, nil
}

func (p *Publisher) upload(ctx context.Context, file, name string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open %s for publishing: %w", file, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", file, err)
	}

	if _, err := p.client.PutObject(ctx, p.bucket, name, f, info.Size(), minio.PutObjectOptions{ContentType: csvContentType}); err != nil {
		return fmt.Errorf("failed to upload %s: %w", name, err)
	}

	p.logger.Info("Published output",
		zap.String("bucket", p.bucket),
		zap.String("object", name),
		zap.Int64("bytes", info.Size()),
	)
	return nil
}
