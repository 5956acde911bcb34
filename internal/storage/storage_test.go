package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	lastInput *s3.PutObjectInput
	err       error
}

func (f *fakeS3) PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func testUploader(client s3Client, cfg Config) *Uploader {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxUploadBytes
	}
	return &Uploader{cfg: cfg, client: client}
}

func TestUploadReturnsPublicURL(t *testing.T) {
	fake := &fakeS3{}
	uploader := testUploader(fake, Config{
		Endpoint:  "http://localhost:9000",
		Bucket:    "club-photos",
		AccessKey: "key",
		SecretKey: "secret",
	})

	url, err := uploader.Upload(context.Background(), []byte("image-bytes"), "image/jpeg", "portrait.jpg")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:9000/club-photos/photos/"), "got %q", url)
	assert.True(t, strings.HasSuffix(url, ".jpg"), "key should keep the original extension, got %q", url)

	require.NotNil(t, fake.lastInput)
	assert.Equal(t, "club-photos", *fake.lastInput.Bucket)
	assert.Equal(t, "image/jpeg", *fake.lastInput.ContentType)
	body, err := io.ReadAll(fake.lastInput.Body)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(body))
}

func TestUploadUsesConfiguredPublicURL(t *testing.T) {
	uploader := testUploader(&fakeS3{}, Config{
		Endpoint:  "http://minio:9000",
		Bucket:    "club-photos",
		PublicURL: "https://cdn.example.com/",
	})

	url, err := uploader.Upload(context.Background(), []byte("x"), "image/png", "logo.png")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/photos/"), "got %q", url)
}

func TestUploadRejectsOversizedPayload(t *testing.T) {
	fake := &fakeS3{}
	uploader := testUploader(fake, Config{Bucket: "club-photos", MaxBytes: 10})

	_, err := uploader.Upload(context.Background(), []byte("way more than ten bytes"), "image/jpeg", "big.jpg")

	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Nil(t, fake.lastInput, "oversized uploads must not reach the store")
}

func TestUploadWrapsStoreFailure(t *testing.T) {
	fake := &fakeS3{err: errors.New("connection refused")}
	uploader := testUploader(fake, Config{Bucket: "club-photos"})

	_, err := uploader.Upload(context.Background(), []byte("x"), "image/jpeg", "a.jpg")

	assert.ErrorIs(t, err, ErrUpstream)
}

func TestEnabled(t *testing.T) {
	assert.True(t, NewUploader(Config{Bucket: "b", AccessKey: "a", SecretKey: "s"}).Enabled())
	assert.False(t, NewUploader(Config{Bucket: "b"}).Enabled())
	assert.False(t, NewUploader(Config{}).Enabled())
}
