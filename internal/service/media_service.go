package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/pets-paws/pets-paws-backend/internal/media"
	"github.com/pets-paws/pets-paws-backend/internal/repository/ports"
)

var (
	ErrImageTooLarge        = errors.New("file size exceeds 10MB limit")
	ErrImageUnsupportedType = errors.New("invalid file type. Allowed types: image/jpeg, image/jpg, image/png, image/webp")
)

const (
	defaultMaxImageBytes = int64(10 * 1024 * 1024)
	petImageFolder       = "pets_paws"
)

type MediaServiceConfig struct {
	Bucket            string
	MaxImageBytes     int64
	ImageProcessor    media.Processor
	ImageMaxDimension int
}

// MediaService stores pet photos in object storage and hands back the URL an
// NGO puts on its listings.
type MediaService struct {
	storage ports.ObjectStorage

	bucket            string
	maxImageBytes     int64
	imageProcessor    media.Processor
	imageMaxDimension int
}

var allowedImageMIMEs = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
}

func NewMediaService(storage ports.ObjectStorage, cfg MediaServiceConfig) *MediaService {
	maxBytes := cfg.MaxImageBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxImageBytes
	}
	maxDim := cfg.ImageMaxDimension
	if maxDim <= 0 {
		maxDim = media.DefaultMaxDimension
	}
	return &MediaService{
		storage:           storage,
		bucket:            cfg.Bucket,
		maxImageBytes:     maxBytes,
		imageProcessor:    cfg.ImageProcessor,
		imageMaxDimension: maxDim,
	}
}

// UploadPetImage validates, downsizes, and stores one photo, returning its
// public URL.
func (s *MediaService) UploadPetImage(ctx context.Context, upload media.Upload) (string, error) {
	contentType := media.NormalizeContentType(upload.ContentType, upload.FileName)
	if _, ok := allowedImageMIMEs[contentType]; !ok {
		return "", ErrImageUnsupportedType
	}
	if upload.Size > s.maxImageBytes {
		return "", ErrImageTooLarge
	}

	reader, size, contentType, err := prepareImageForUpload(ctx, s.imageProcessor, media.Upload{
		Reader:      upload.Reader,
		Size:        upload.Size,
		FileName:    upload.FileName,
		ContentType: contentType,
	}, s.imageMaxDimension)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("%s/%s%s", petImageFolder, uuid.NewString(), imageExtension(contentType, upload.FileName))
	return s.storage.Upload(ctx, s.bucket, objectName, contentType, reader, size)
}

func imageExtension(contentType, fileName string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	}
	if ext := strings.ToLower(strings.TrimSpace(filepath.Ext(fileName))); ext != "" {
		return ext
	}
	return ".bin"
}
