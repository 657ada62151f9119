package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/admitpath/api-go/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectStore is the bucket the audit exports land in.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
}

type r2Store struct {
	client *s3.Client
	bucket string
}

// NewR2Store builds an S3 client against the Cloudflare R2 endpoint.
func NewR2Store(cfg *config.StorageConfig) ObjectStore {
	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		Region: cfg.Region,
	})

	return &r2Store{client: client, bucket: cfg.BucketName}
}

func (s *r2Store) Put(ctx context.Context, key, contentType string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	return err
}
