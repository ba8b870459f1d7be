package storage

import "context"

// Provider stores plan snapshots in an object store.
type Provider interface {
	// CheckBucket creates the bucket when it is missing.
	CheckBucket(ctx context.Context) error
	Put(ctx context.Context, objectKey string, data []byte, contentType string) error
}
