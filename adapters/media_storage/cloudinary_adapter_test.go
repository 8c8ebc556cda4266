package media_storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/dynamic-profile/internal/config"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

type fakeUploadAPI struct {
	params   uploader.UploadParams
	body     string
	result   uploader.UploadResult
	err      error
	destroys []string
}

func (f *fakeUploadAPI) Upload(_ context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
	f.params = params
	if r, ok := file.(io.Reader); ok {
		b, _ := io.ReadAll(r)
		f.body = string(b)
	}
	if f.err != nil {
		return nil, f.err
	}
	res := f.result
	return &res, nil
}

func (f *fakeUploadAPI) Destroy(_ context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error) {
	f.destroys = append(f.destroys, params.PublicID)
	return &uploader.DestroyResult{Result: "ok"}, nil
}

func TestNewCloudinaryAdapter_RequiresCloudName(t *testing.T) {
	_, err := NewCloudinaryAdapter(config.Config{}, logger.NewNop())
	assert.Error(t, err)
}

func TestUpload(t *testing.T) {
	fake := &fakeUploadAPI{result: uploader.UploadResult{SecureURL: "https://res.cloudinary.com/x/avatar.png"}}
	a := &cloudinaryAdapter{api: fake, rootFolder: "dynamic-profile", logger: logger.NewNop()}

	url, err := a.Upload(context.Background(), strings.NewReader("png"), "generated", "avatar-1")
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/x/avatar.png", url)
	assert.Equal(t, "dynamic-profile/generated", fake.params.Folder)
	assert.Equal(t, "avatar-1", fake.params.PublicID)
	assert.Equal(t, "auto", fake.params.ResourceType)
	assert.Equal(t, "png", fake.body)
}

func TestUpload_Errors(t *testing.T) {
	fake := &fakeUploadAPI{err: errors.New("network")}
	a := &cloudinaryAdapter{api: fake, logger: logger.NewNop()}
	_, err := a.Upload(context.Background(), strings.NewReader(""), "f", "id")
	assert.ErrorContains(t, err, "network")

	fake = &fakeUploadAPI{}
	fake.result.Error.Message = "Invalid signature"
	a.api = fake
	_, err = a.Upload(context.Background(), strings.NewReader(""), "f", "id")
	assert.ErrorContains(t, err, "Invalid signature")
	assert.Equal(t, "f", fake.params.Folder)
}

func TestDelete(t *testing.T) {
	fake := &fakeUploadAPI{}
	a := &cloudinaryAdapter{api: fake, logger: logger.NewNop()}
	require.NoError(t, a.Delete(context.Background(), "avatar-1"))
	assert.Equal(t, []string{"avatar-1"}, fake.destroys)
}
