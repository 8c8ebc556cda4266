package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/dynamic-profile/adapters/persistence"
	"github.com/khoahotran/dynamic-profile/internal/application/store"
	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
	"github.com/khoahotran/dynamic-profile/pkg/apperror"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

type ProfileUseCaseTestSuite struct {
	suite.Suite
	storage *persistence.MemoryDocumentStorage
	store   *store.Store
	uc      *ProfileUseCase
}

func (s *ProfileUseCaseTestSuite) SetupTest() {
	s.storage = persistence.NewMemoryDocumentStorage()
	s.store = store.New(context.Background(), s.storage, "", logger.NewNop())
	s.uc = NewProfileUseCase(s.store, logger.NewNop())
}

func (s *ProfileUseCaseTestSuite) TearDownTest() {
	s.store.Close()
}

func TestProfileUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ProfileUseCaseTestSuite))
}

func (s *ProfileUseCaseTestSuite) Test_GetProfile_NewUserSeesDemo() {
	out := s.uc.ExecuteGetProfile(context.Background())
	s.True(out.NewUser)
	s.Equal("Alex Doe", out.Profile.PersonalInfo.Name)
}

func (s *ProfileUseCaseTestSuite) Test_Onboarding() {
	_, err := s.uc.ExecuteCompleteOnboarding(context.Background(), OnboardingInput{Name: "  "})
	s.ErrorIs(err, apperror.ErrInvalidInput)
	s.Contains(err.Error(), MsgNameRequired)

	out, err := s.uc.ExecuteCompleteOnboarding(context.Background(), OnboardingInput{Name: "Jane", Title: "Designer", UseAI: true})
	s.Require().NoError(err)
	s.True(out.OpenWizard)
	s.Equal("Jane", out.Profile.PersonalInfo.Name)
	s.Empty(out.Profile.Experience)
	s.False(s.uc.ExecuteGetProfile(context.Background()).NewUser)
}

func (s *ProfileUseCaseTestSuite) Test_ReplaceProfile() {
	raw := []byte(`{"personalInfo": {"name": "Imported"}, "projects": [{"name": "P"}]}`)

	out, err := s.uc.ExecuteReplaceProfile(context.Background(), ReplaceProfileInput{Raw: raw})
	s.Require().NoError(err)
	s.Equal("Imported", out.Profile.PersonalInfo.Name)
	s.Require().Len(out.Profile.Projects, 1)
	s.NotEmpty(out.Profile.Projects[0].ID)
	s.Equal(profile.CurrentSchemaVersion, out.Profile.SchemaVersion)
}

func (s *ProfileUseCaseTestSuite) Test_ReplaceProfile_InvalidLeavesDocument() {
	before := s.store.Current()

	for _, raw := range []string{
		`not json`,
		`{"experience": []}`,
		`{"personalInfo": {}, "settings": {"theme": "sepia"}}`,
		`{"schemaVersion": 99, "personalInfo": {}}`,
	} {
		_, err := s.uc.ExecuteReplaceProfile(context.Background(), ReplaceProfileInput{Raw: []byte(raw)})
		s.ErrorIs(err, apperror.ErrInvalidInput, raw)
	}
	s.Equal(before, s.store.Current())
}

func (s *ProfileUseCaseTestSuite) Test_PatchProfile() {
	out, err := s.uc.ExecutePatchProfile(context.Background(), PatchProfileInput{Path: "settings.theme", Value: "light"})
	s.Require().NoError(err)
	s.Equal(profile.ThemeLight, out.Profile.Settings.Theme)

	_, err = s.uc.ExecutePatchProfile(context.Background(), PatchProfileInput{Path: "settings.layout", Value: "grid"})
	s.ErrorIs(err, apperror.ErrInvalidInput)

	_, err = s.uc.ExecutePatchProfile(context.Background(), PatchProfileInput{Path: "personalInfo.age", Value: 3})
	s.ErrorIs(err, apperror.ErrInvalidInput)

	_, err = s.uc.ExecutePatchProfile(context.Background(), PatchProfileInput{Path: "experience.0.id", Value: "x"})
	s.ErrorIs(err, apperror.ErrInvalidInput)

	s.Equal(profile.LayoutScroll, s.store.Current().Settings.Layout)
}
