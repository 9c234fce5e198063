// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that input files can be read from, and
// reconciliation outputs published to, AWS S3 or a self-hosted MinIO instance.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates the publish bucket if needed.
//   - PutObject: Uploads an output file.
//   - GetObject: Streams an input file.
//
// # Locations
//
// Inputs in object storage are addressed as "s3://bucket/object"; ParseURL
// splits such a location.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	obj, err := client.GetObject(ctx, "exports", "users.csv", minio.GetObjectOptions{})
package storage
