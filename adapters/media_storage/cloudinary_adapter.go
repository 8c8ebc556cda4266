package media_storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"

	"github.com/khoahotran/dynamic-profile/internal/application/service"
	"github.com/khoahotran/dynamic-profile/internal/config"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

// uploadAPI is the part of the cloudinary upload API the adapter calls.
type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

type cloudinaryAdapter struct {
	api        uploadAPI
	rootFolder string
	logger     logger.Logger
}

// NewCloudinaryAdapter connects to the configured cloud. Every upload lands
// under the configured root folder.
func NewCloudinaryAdapter(cfg config.Config, log logger.Logger) (service.Uploader, error) {
	if cfg.Cloudinary.CloudName == "" {
		return nil, fmt.Errorf("cloudinary cloud_name has not config")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.ApiKey,
		cfg.Cloudinary.ApiSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot init cloudinary: %w", err)
	}

	log.Info("Connect Cloudinary successfully.", zap.String("cloud_name", cfg.Cloudinary.CloudName))
	return &cloudinaryAdapter{api: &cld.Upload, rootFolder: cfg.Cloudinary.Folder, logger: log}, nil
}

func (a *cloudinaryAdapter) folder(sub string) string {
	if a.rootFolder == "" {
		return sub
	}
	return path.Join(a.rootFolder, sub)
}

// Upload stores file and returns its secure URL. The resource type is
// detected so images and JSON snapshots share the call.
func (a *cloudinaryAdapter) Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error) {
	uploadParams := uploader.UploadParams{
		PublicID:     publicID,
		Folder:       a.folder(folder),
		ResourceType: "auto",
		Overwrite:    api.Bool(true),
	}
	result, err := a.api.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", fmt.Errorf("failed to upload cloudinary: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("failed to upload cloudinary: %s", result.Error.Message)
	}
	a.logger.Debug("Uploaded to cloudinary", zap.String("public_id", result.PublicID), zap.Int("bytes", result.Bytes))
	return result.SecureURL, nil
}

func (a *cloudinaryAdapter) Delete(ctx context.Context, publicID string) error {
	result, err := a.api.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete cloudinary: %w", err)
	}
	if result.Error.Message != "" {
		return fmt.Errorf("failed to delete cloudinary: %s", result.Error.Message)
	}
	return nil
}
