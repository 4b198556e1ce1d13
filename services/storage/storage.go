package storage

import (
	"context"
	"fmt"
	"io"

	"medicare/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// StorageService stores uploaded images and returns their public location.
type StorageService interface {
	Upload(ctx context.Context, file io.Reader, folder string) (*UploadResult, error)
}

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

var (
	ErrStorageUnavailable = utils.NewError(utils.KindUnavailable, "image storage is not configured")
	ErrUnknownFolder      = utils.NewError(utils.KindBadRequest, "unknown upload folder")
)

// Folders are the upload destinations clients may name.
var Folders = map[string]bool{"tests": true, "banners": true, "avatars": true}

// CloudinaryStorage uploads into medicare/<folder> on Cloudinary.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewStorageService builds the Cloudinary-backed service from a
// cloudinary:// URL. An empty URL yields a service that reports itself
// unavailable.
func NewStorageService(cloudinaryURL string) (*CloudinaryStorage, error) {
	if cloudinaryURL == "" {
		return &CloudinaryStorage{}, nil
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config: %w", err)
	}
	return &CloudinaryStorage{cld: cld}, nil
}

func (s *CloudinaryStorage) Upload(ctx context.Context, file io.Reader, folder string) (*UploadResult, error) {
	if !Folders[folder] {
		return nil, ErrUnknownFolder
	}
	if s.cld == nil {
		return nil, ErrStorageUnavailable
	}
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: "medicare/" + folder})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("no public ID returned")
	}
	utils.GetLogger().Info("File uploaded", zap.String("publicId", result.PublicID), zap.String("folder", folder))
	return &UploadResult{URL: result.SecureURL, PublicID: result.PublicID}, nil
}
