package uploads

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"safetybot-backend/internal/util/logger"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// 10 MiB cap per image
const maxUploadSize = 10 << 20

var ErrFileTooLarge = errors.New("file exceeds the 10 MB limit")
var ErrUnsupportedType = errors.New("only jpeg, png, gif and webp images are allowed")

var log = logger.GetLogger()

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// UploadService stores user images in an object storage bucket and hands
// back public URLs.
type UploadService struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewUploadService(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*UploadService, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	scheme := "http"
	if useSSL {
		scheme = "https"
	}

	return &UploadService{
		client:    client,
		bucket:    bucket,
		publicURL: fmt.Sprintf("%s://%s/%s", scheme, endpoint, bucket),
	}, nil
}

// EnsureBucket creates the bucket if it does not exist yet. Called once
// at boot.
func (s *UploadService) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	log.Info("Created uploads bucket", "bucket", s.bucket)
	return nil
}

// UploadImage validates and stores one multipart image, returning its
// public object URL.
func (s *UploadService) UploadImage(
	ctx context.Context,
	userID uuid.UUID,
	header *multipart.FileHeader,
) (string, error) {
	if header.Size > maxUploadSize {
		return "", ErrFileTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	extension, ok := allowedContentTypes[contentType]
	if !ok {
		return "", ErrUnsupportedType
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	objectName := filepath.ToSlash(filepath.Join(
		userID.String(),
		uuid.New().String()+extension,
	))

	_, err = s.client.PutObject(ctx, s.bucket, objectName, file, header.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store uploaded file: %w", err)
	}

	return strings.Join([]string{s.publicURL, objectName}, "/"), nil
}
