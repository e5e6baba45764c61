package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"requirement-pool/internal/config"
	"requirement-pool/internal/domain"
)

var ErrMediaStorageUnavailable = errors.New("media storage is not configured")

type MediaService interface {
	UploadImage(ctx context.Context, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.UploadedImage, error)
}

type mediaService struct {
	minioClient *minio.Client
	cfg         *config.Config
}

func NewMediaService(minioClient *minio.Client, cfg *config.Config) MediaService {
	return &mediaService{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *mediaService) UploadImage(ctx context.Context, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.UploadedImage, error) {
	if s.minioClient == nil {
		return nil, ErrMediaStorageUnavailable
	}

	storagePath := fmt.Sprintf("uploads/%s/%s%s",
		time.Now().Format("2006/01"), uuid.New().String(), path.Ext(fileName))

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	return &domain.UploadedImage{
		OriginalName: fileName,
		Size:         fileSize,
		MimeType:     mimeType,
		URL:          s.getPublicURL(storagePath),
	}, nil
}

func (s *mediaService) getPublicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, url.PathEscape(storagePath))
}
