package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/Eursukkul/buggy-fleet/pkg/log"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type S3Options struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	UseSSL          bool
}

type minioProvider struct {
	client     *minio.Client
	bucketName string
}

// NewMinIOProvider returns a Provider for any S3-compatible endpoint.
func NewMinIOProvider(opts *S3Options) (Provider, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKeyID, opts.SecretAccessKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &minioProvider{
		client:     client,
		bucketName: opts.BucketName,
	}, nil
}

func (p *minioProvider) CheckBucket(ctx context.Context) error {
	exists, err := p.client.BucketExists(ctx, p.bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		log.Info("Bucket does not exist, creating...", "bucket", p.bucketName)
		if err := p.client.MakeBucket(ctx, p.bucketName, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

func (p *minioProvider) Put(ctx context.Context, objectKey string, data []byte, contentType string) error {
	_, err := p.client.PutObject(ctx, p.bucketName, objectKey, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", objectKey, err)
	}
	return nil
}
