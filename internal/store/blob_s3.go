package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/MKhiriev/go-absence-keeper/internal/config"
	"github.com/MKhiriev/go-absence-keeper/internal/logger"
)

// S3BlobStorage is the [BlobStorage] backed by an S3-compatible bucket.
// Object keys equal the blob paths.
type S3BlobStorage struct {
	client *s3.Client
	bucket string
	logger *logger.Logger
}

// NewS3BlobStorage builds an S3 client from cfg. Static credentials are used
// when both key parts are set, otherwise the default AWS credential chain
// applies.
func NewS3BlobStorage(ctx context.Context, cfg config.S3, log *logger.Logger) (*S3BlobStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3BlobStorage").Msg("error loading aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
		// S3-compatible stores (MinIO and the like) reject trailing checksums
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})

	log.Debug().Str("func", "NewS3BlobStorage").Str("bucket", cfg.Bucket).Msg("s3 blob storage configured")

	return &S3BlobStorage{
		client: client,
		bucket: cfg.Bucket,
		logger: log,
	}, nil
}

// Put implements [BlobStorage].
func (s *S3BlobStorage) Put(ctx context.Context, blobPath string, data []byte) error {
	if blobPath == "" {
		return ErrInvalidBlobPath
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(blobPath),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("application/octet-stream"),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "S3BlobStorage.Put").
			Str("bucket", s.bucket).
			Msg("error uploading blob")
		return fmt.Errorf("error uploading blob: %w", err)
	}

	return nil
}

// Get implements [BlobStorage].
func (s *S3BlobStorage) Get(ctx context.Context, blobPath string) ([]byte, error) {
	if blobPath == "" {
		return nil, ErrInvalidBlobPath
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(blobPath),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrBlobNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "S3BlobStorage.Get").
			Str("bucket", s.bucket).
			Msg("error downloading blob")
		return nil, fmt.Errorf("error downloading blob: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading blob body: %w", err)
	}

	return data, nil
}

// Delete implements [BlobStorage]. S3 treats deleting a missing key as
// success.
func (s *S3BlobStorage) Delete(ctx context.Context, blobPath string) error {
	if blobPath == "" {
		return ErrInvalidBlobPath
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(blobPath),
	}); err != nil {
		return fmt.Errorf("error deleting blob: %w", err)
	}

	return nil
}
