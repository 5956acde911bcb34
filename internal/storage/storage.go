// Package storage uploads member, team and event photos to an S3-compatible
// object store and hands back public URLs. Images are compressed client-side
// before upload, so the server only enforces the agreed size cap.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// DefaultMaxUploadBytes matches the client-side compression target.
const DefaultMaxUploadBytes = 50 * 1024

var (
	// ErrTooLarge is returned when an upload exceeds the configured size cap.
	ErrTooLarge = errors.New("upload exceeds maximum allowed size")

	// ErrUpstream is returned when the object store call fails.
	ErrUpstream = errors.New("object storage request failed")
)

// s3Client is an interface for testability.
type s3Client interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config holds S3-compatible storage configuration.
type Config struct {
	Endpoint  string
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	PublicURL string // base URL objects are served from; defaults to endpoint/bucket
	MaxBytes  int64
}

// Uploader stores photo bytes and returns their public URL.
type Uploader struct {
	cfg    Config
	client s3Client
}

// NewUploader creates an uploader against the configured bucket.
func NewUploader(cfg Config) *Uploader {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxUploadBytes
	}
	return &Uploader{cfg: cfg, client: newS3Client(cfg)}
}

func newS3Client(cfg Config) *s3.Client {
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return s3.New(opts)
}

// Enabled reports whether storage credentials are configured.
func (u *Uploader) Enabled() bool {
	return u.cfg.Bucket != "" && u.cfg.AccessKey != "" && u.cfg.SecretKey != ""
}

// Upload stores the given bytes under a generated key and returns the public
// URL. The key keeps the original extension so content negotiation still works
// for clients that ignore Content-Type.
func (u *Uploader) Upload(ctx context.Context, data []byte, contentType, filename string) (string, error) {
	if int64(len(data)) > u.cfg.MaxBytes {
		return "", fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, len(data), u.cfg.MaxBytes)
	}

	key := "photos/" + uuid.NewString()
	if ext := path.Ext(filename); ext != "" {
		key += ext
	}

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return u.publicURL(key), nil
}

func (u *Uploader) publicURL(key string) string {
	base := u.cfg.PublicURL
	if base == "" {
		base = strings.TrimSuffix(u.cfg.Endpoint, "/") + "/" + u.cfg.Bucket
	}
	return strings.TrimSuffix(base, "/") + "/" + key
}
