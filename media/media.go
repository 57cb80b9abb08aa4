// Package media stores uploaded images in a MinIO bucket.
package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"BEARSTY_server/config"
	"BEARSTY_server/global"

	"github.com/aidarkhanov/nanoid/v2"
	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ImageExtension maps an image Content-Type to a file extension.
// Parameters after ';' are ignored.
func ImageExtension(contentType string) (string, bool) {
	mediaType, _, _ := strings.Cut(contentType, ";")
	ext, ok := imageExtensions[strings.ToLower(strings.TrimSpace(mediaType))]
	return ext, ok
}

// ObjectPutter is the part of *minio.Client used for uploads
type ObjectPutter interface {
	PutObject(ctx context.Context, bucketName string, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// Uploader writes images under <folder>/<id>/<nanoid>.<ext>
type Uploader struct {
	client    ObjectPutter
	bucket    string
	publicURL string
}

// New wraps a client; publicURL is the address objects are served from
func New(client ObjectPutter, bucket string, publicURL string) *Uploader {
	return &Uploader{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Dial connects to MinIO and creates the bucket if missing
func Dial(ctx context.Context, cfg config.MinIOConfig) (*Uploader, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.User, cfg.Password, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("minio %s: %w", cfg.Endpoint, err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: "us-east-1"}); err != nil {
			return nil, fmt.Errorf("minio make bucket %s: %w", cfg.Bucket, err)
		}
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = client.EndpointURL().String()
	}
	return New(client, cfg.Bucket, publicURL), nil
}

// Put uploads data and returns its public URL
func (u *Uploader) Put(ctx context.Context, folder string, id int64, contentType string, data []byte) (string, error) {
	ext, ok := ImageExtension(contentType)
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", contentType)
	}

	name, err := nanoid.GenerateString(global.VALID_NANOID_CHAR, 16)
	if err != nil {
		return "", err
	}
	objectName := fmt.Sprintf("%s/%d/%s%s", folder, id, name, ext)

	mediaType, _, _ := strings.Cut(contentType, ";")
	_, err = u.client.PutObject(ctx, u.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: strings.ToLower(strings.TrimSpace(mediaType)),
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", objectName, err)
	}

	return u.publicURL + "/" + u.bucket + "/" + objectName, nil
}
