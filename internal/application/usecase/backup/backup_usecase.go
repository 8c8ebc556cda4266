package backup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/dynamic-profile/internal/application/service"
	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

const Folder = "backups/profile"

type BackupUseCase struct {
	storage  service.DocumentStorage
	key      string
	uploader service.Uploader
	logger   logger.Logger
	now      func() time.Time
}

func NewBackupUseCase(storage service.DocumentStorage, key string, uploader service.Uploader, log logger.Logger) *BackupUseCase {
	if key == "" {
		key = profile.StorageKey
	}
	return &BackupUseCase{
		storage:  storage,
		key:      key,
		uploader: uploader,
		logger:   log,
		now:      time.Now,
	}
}

// Execute uploads a snapshot of the persisted document and returns its URL.
// A missing document is not an error; there is nothing to back up yet.
func (uc *BackupUseCase) Execute(ctx context.Context) (string, error) {
	uc.logger.Info("Starting profile backup...", zap.String("storage_key", uc.key))

	raw, err := uc.storage.Load(ctx, uc.key)
	if errors.Is(err, service.ErrDocumentNotFound) {
		uc.logger.Info("No stored profile, skipping backup")
		return "", nil
	}
	if err != nil {
		uc.logger.Error("Failed to load profile for backup", err)
		return "", fmt.Errorf("load profile: %w", err)
	}

	// Only snapshots that still decode are worth keeping.
	doc, err := profile.Decode(raw)
	if err != nil {
		uc.logger.Error("Stored profile is not decodable, skipping backup", err)
		return "", fmt.Errorf("decode profile: %w", err)
	}
	data, err := profile.EncodeIndent(doc)
	if err != nil {
		return "", fmt.Errorf("encode profile: %w", err)
	}

	timestamp := uc.now().UTC().Format("2006-01-02_15-04-05")
	publicID := fmt.Sprintf("%s-%s.json", uc.key, timestamp)

	uploadURL, err := uc.uploader.Upload(ctx, bytes.NewReader(data), Folder, publicID)
	if err != nil {
		uc.logger.Error("Failed to upload backup to Cloudinary", err)
		return "", fmt.Errorf("upload backup: %w", err)
	}

	uc.logger.Info("Profile backup completed and uploaded successfully",
		zap.String("url", uploadURL),
		zap.String("public_id", publicID),
	)
	return uploadURL, nil
}
