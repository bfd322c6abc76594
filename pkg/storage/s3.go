package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// S3Client is the subset of the S3 API used by S3Storage. Declared as an
// interface so tests can substitute a mock.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// S3Config contains configuration for S3 artifact storage.
type S3Config struct {
	Bucket         string `env:"S3_BUCKET"`
	Region         string `env:"S3_REGION"`
	AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"S3_SECRET_KEY"`
	Endpoint       string `env:"S3_ENDPOINT"`         // Optional: for S3-compatible services
	KeyPrefix      string `env:"S3_KEY_PREFIX"`       // Optional: object key prefix, e.g. "qr/"
	BaseURL        string `env:"S3_BASE_URL"`         // Public URL base for serving artifacts
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE"` // For S3-compatible services like MinIO
}

// S3Storage implements Storage on an S3 bucket. Object writes are atomic on
// the S3 side, so no temp-and-rename dance is needed.
type S3Storage struct {
	client    S3Client
	bucket    string
	keyPrefix string
	baseURL   string
}

// S3Option configures S3Storage construction.
type S3Option func(*S3Storage)

// WithS3Client sets a custom pre-configured S3 client. Useful for testing
// with mocks and for callers that manage AWS configuration themselves.
func WithS3Client(client S3Client) S3Option {
	return func(s *S3Storage) {
		s.client = client
	}
}

// NewS3Storage creates an S3-backed artifact store. Unless a client is
// injected via WithS3Client, the AWS SDK client is built from cfg using
// static credentials.
func NewS3Storage(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Storage, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	baseURL := cfg.BaseURL
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	s := &S3Storage{
		bucket:    cfg.Bucket,
		keyPrefix: cfg.KeyPrefix,
		baseURL:   baseURL,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(cfg.Region),
			awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
			),
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		s.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = cfg.ForcePathStyle
		})
	}

	return s, nil
}

// Save encodes img as PNG and uploads it under a fresh unique key.
func (s *S3Storage) Save(ctx context.Context, img image.Image) (*Artifact, error) {
	if img == nil {
		return nil, ErrNilImage
	}

	id, filename := newArtifactName()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteArtifact, err)
	}

	key := s.keyPrefix + filename
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		return nil, classifyS3Error(err, ErrFailedToWriteArtifact)
	}

	return &Artifact{
		ID:       id,
		Filename: filename,
		Path:     key,
		URL:      s.URL(filename),
		Size:     int64(buf.Len()),
	}, nil
}

// Open returns a reader over a stored object's bytes.
func (s *S3Storage) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	if err := validateFilename(filename); err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.keyPrefix + filename),
	})
	if err != nil {
		return nil, classifyS3Error(err, ErrFailedToReadArtifact)
	}
	return out.Body, nil
}

// Exists reports whether the object is present in the bucket.
func (s *S3Storage) Exists(ctx context.Context, filename string) bool {
	if validateFilename(filename) != nil {
		return false
	}

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.keyPrefix + filename),
	})
	return err == nil
}

// URL returns the public URL for an artifact filename.
func (s *S3Storage) URL(filename string) string {
	return s.baseURL + filename
}

// classifyS3Error maps well-known S3 error codes to package sentinels so
// callers can distinguish configuration problems from plain write failures.
func classifyS3Error(err error, fallback error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchBucket":
			return fmt.Errorf("%w: %v", ErrBucketNotFound, err)
		case "AccessDenied":
			return fmt.Errorf("%w: %v", ErrAccessDenied, err)
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %v", ErrArtifactNotFound, err)
		}
	}
	return fmt.Errorf("%w: %v", fallback, err)
}
