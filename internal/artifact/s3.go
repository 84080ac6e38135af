package artifact

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/klauspost/compress/zstd"
)

// S3Store uploads artifacts to a single bucket. With compression enabled
// the body is zstd-encoded and stored under the same key with content type
// application/zstd, which the execution side recognizes and decodes.
type S3Store struct {
	client   *s3.Client
	bucket   string
	compress bool
}

func NewS3Store(ctx context.Context, region, bucket string, compress bool) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return &S3Store{
		client:   s3.NewFromConfig(cfg),
		bucket:   bucket,
		compress: compress,
	}, nil
}

func (s *S3Store) Put(ctx context.Context, key string, content []byte, contentType string) error {
	body := content
	if s.compress {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return fmt.Errorf("failed to create zstd writer: %w", err)
		}
		body = enc.EncodeAll(content, nil)
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to close zstd writer: %w", err)
		}
		contentType = "application/zstd"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload artifact %s: %w", key, err)
	}
	return nil
}
