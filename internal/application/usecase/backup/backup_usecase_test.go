package backup

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/dynamic-profile/adapters/persistence"
	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

type captureUploader struct {
	folder   string
	publicID string
	body     []byte
	err      error
}

func (u *captureUploader) Upload(_ context.Context, file io.Reader, folder string, publicID string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.folder, u.publicID = folder, publicID
	u.body, _ = io.ReadAll(file)
	return "https://cdn.example.com/" + folder + "/" + publicID, nil
}

func (u *captureUploader) Delete(context.Context, string) error { return nil }

func TestBackup_UploadsSnapshot(t *testing.T) {
	storage := persistence.NewMemoryDocumentStorage()
	raw, err := profile.Encode(profile.NewForOwner("Jane", "Engineer"))
	require.NoError(t, err)
	require.NoError(t, storage.Save(context.Background(), profile.StorageKey, raw))

	up := &captureUploader{}
	uc := NewBackupUseCase(storage, "", up, logger.NewNop())
	uc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC) }

	url, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/backups/profile/profileData-2026-03-01_12-30-00.json", url)
	assert.Equal(t, Folder, up.folder)

	doc, err := profile.Decode(up.body)
	require.NoError(t, err)
	assert.Equal(t, "Jane", doc.PersonalInfo.Name)
}

func TestBackup_NothingStored(t *testing.T) {
	up := &captureUploader{}
	url, err := NewBackupUseCase(persistence.NewMemoryDocumentStorage(), "", up, logger.NewNop()).Execute(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, url)
	assert.Empty(t, up.publicID)
}

func TestBackup_Failures(t *testing.T) {
	storage := persistence.NewMemoryDocumentStorage()
	require.NoError(t, storage.Save(context.Background(), "k", []byte(`{"schemaVersion": 7}`)))
	_, err := NewBackupUseCase(storage, "k", &captureUploader{}, logger.NewNop()).Execute(context.Background())
	assert.ErrorIs(t, err, profile.ErrUnsupportedVersion)

	require.NoError(t, storage.Save(context.Background(), "k", []byte(`{"personalInfo": {}}`)))
	_, err = NewBackupUseCase(storage, "k", &captureUploader{err: errors.New("quota")}, logger.NewNop()).Execute(context.Background())
	assert.ErrorContains(t, err, "quota")
}
