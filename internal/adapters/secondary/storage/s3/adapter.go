package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/fedcourts/docket-engine/internal/core/port"
)

// Config holds the S3 adapter configuration.
type Config struct {
	Bucket          string
	Region          string
	Endpoint        string // For S3-compatible services (MinIO, LocalStack)
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
}

// Adapter implements port.StorageAdapter for AWS S3 and compatible services,
// backing filed-document storage and presigned upload staging.
type Adapter struct {
	client *s3.Client
	bucket string
}

// New creates a new S3 storage adapter.
func New(cfg *Config) (port.StorageAdapter, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3: bucket is required")
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background(), loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("s3: loading aws config: %w", err)
	}

	var clientOpts []func(*s3.Options)

	// Custom endpoint for S3-compatible services (MinIO, LocalStack)
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}
	if cfg.UsePathStyle {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}

	client := s3.NewFromConfig(awsCfg, clientOpts...)

	return &Adapter{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// Upload stores data with the given key and content type.
func (a *Adapter) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}

	_, err := a.client.PutObject(ctx, input)
	if err != nil {
		return fmt.Errorf("s3: uploading object: %w", err)
	}

	return nil
}

// Download retrieves data by key.
func (a *Adapter) Download(ctx context.Context, key string) ([]byte, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	}

	result, err := a.client.GetObject(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("s3: getting object: %w", err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("s3: reading object body: %w", err)
	}

	return data, nil
}

// GetURL returns a presigned GET URL for accessing the object.
func (a *Adapter) GetURL(ctx context.Context, key string) (string, error) {
	presignClient := s3.NewPresignClient(a.client)

	input := &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	}

	result, err := presignClient.PresignGetObject(ctx, input, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", fmt.Errorf("s3: presigning get url: %w", err)
	}

	return result.URL, nil
}

// PresignUpload returns a time-limited URL the caller can PUT the object
// body to directly, used by the Upload Stager to hand filers a direct-to-S3
// write without the bytes transiting this service.
func (a *Adapter) PresignUpload(ctx context.Context, key, contentType string, expires time.Duration) (string, error) {
	presignClient := s3.NewPresignClient(a.client)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	result, err := presignClient.PresignPutObject(ctx, input, func(opts *s3.PresignOptions) {
		opts.Expires = expires
	})
	if err != nil {
		return "", fmt.Errorf("s3: presigning put url: %w", err)
	}

	return result.URL, nil
}

// Delete removes an object by key.
func (a *Adapter) Delete(ctx context.Context, key string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	}

	_, err := a.client.DeleteObject(ctx, input)
	if err != nil {
		return fmt.Errorf("s3: deleting object: %w", err)
	}

	return nil
}

// Exists checks if an object exists at the given key.
func (a *Adapter) Exists(ctx context.Context, key string) (bool, error) {
	_, err := a.headObject(ctx, key)
	if err != nil {
		if errors.Is(err, errObjectNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// HeadObject verifies a staged upload landed in the bucket and returns its
// reported size and ETag for the Upload Stager's finalize step.
func (a *Adapter) HeadObject(ctx context.Context, key string) (*port.ObjectMetadata, error) {
	out, err := a.headObject(ctx, key)
	if err != nil {
		if errors.Is(err, errObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var size int64
	if out.ContentLength != nil {
		size = *out.ContentLength
	}

	return &port.ObjectMetadata{
		ETag:        strings.Trim(aws.ToString(out.ETag), `"`),
		ContentSize: size,
	}, nil
}

var errObjectNotFound = errors.New("s3: object not found")

func (a *Adapter) headObject(ctx context.Context, key string) (*s3.HeadObjectOutput, error) {
	input := &s3.HeadObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	}

	out, err := a.client.HeadObject(ctx, input)
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return nil, errObjectNotFound
		}
		return nil, fmt.Errorf("s3: checking object existence: %w", err)
	}

	return out, nil
}
