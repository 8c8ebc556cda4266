package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/dynamic-profile/internal/application/service"
	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

type fakeStorage struct {
	mu      sync.Mutex
	items   map[string][]byte
	saves   int
	loadErr error
	saveErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{items: map[string][]byte{}}
}

func (f *fakeStorage) Load(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	raw, ok := f.items[key]
	if !ok {
		return nil, service.ErrDocumentNotFound
	}
	return raw, nil
}

func (f *fakeStorage) Save(_ context.Context, key string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.items[key] = data
	f.saves++
	return nil
}

func (f *fakeStorage) stored(key string) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[key]
}

func (f *fakeStorage) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}

type StoreTestSuite struct {
	suite.Suite
	storage *fakeStorage
}

func (s *StoreTestSuite) SetupTest() {
	s.storage = newFakeStorage()
}

func (s *StoreTestSuite) open() *Store {
	return New(context.Background(), s.storage, "", logger.NewNop())
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) Test_EmptyStorage_SeedsDemoAsNewUser() {
	st := s.open()
	s.True(st.IsNewUser())
	s.Equal("Alex Doe", st.Current().PersonalInfo.Name)
	s.Equal(profile.StorageKey, st.Key())

	st.Close()
	s.Equal(0, s.storage.saveCount(), "the demo seed is never persisted")
}

func (s *StoreTestSuite) Test_LoadsStoredDocument() {
	doc := profile.NewForOwner("Jane", "Engineer")
	raw, err := profile.Encode(doc)
	s.Require().NoError(err)
	s.storage.items[profile.StorageKey] = raw

	st := s.open()
	defer st.Close()
	s.False(st.IsNewUser())
	s.Equal("Jane", st.Current().PersonalInfo.Name)
}

func (s *StoreTestSuite) Test_CorruptDocument_FallsBackToDemo() {
	s.storage.items[profile.StorageKey] = []byte(`{"personalInfo": [`)

	st := s.open()
	defer st.Close()
	s.False(st.IsNewUser())
	s.Equal("Alex Doe", st.Current().PersonalInfo.Name)
}

func (s *StoreTestSuite) Test_ReadError_FallsBackToDemo() {
	s.storage.loadErr = errors.New("disk on fire")

	st := s.open()
	defer st.Close()
	s.Equal("Alex Doe", st.Current().PersonalInfo.Name)
}

func (s *StoreTestSuite) Test_CurrentIsACopy() {
	st := s.open()
	defer st.Close()

	doc := st.Current()
	doc.PersonalInfo.Name = "Mutated"
	doc.Projects[0].Tags[0] = "Mutated"

	s.Equal("Alex Doe", st.Current().PersonalInfo.Name)
	s.Equal("React", st.Current().Projects[0].Tags[0])
}

func (s *StoreTestSuite) Test_Update_CommitsAndPersists() {
	st := s.open()

	next, err := st.Update(func(prev *profile.Document) (*profile.Document, error) {
		prev.PersonalInfo.Title = "Staff Engineer"
		return prev, nil
	})
	s.Require().NoError(err)
	s.Equal("Staff Engineer", next.PersonalInfo.Title)
	s.False(st.IsNewUser())

	st.Close()
	stored, err := profile.Decode(s.storage.stored(profile.StorageKey))
	s.Require().NoError(err)
	s.Equal("Staff Engineer", stored.PersonalInfo.Title)
}

func (s *StoreTestSuite) Test_Update_ErrorCommitsNothing() {
	st := s.open()
	defer st.Close()
	before := st.Current()

	_, err := st.Update(func(prev *profile.Document) (*profile.Document, error) {
		prev.PersonalInfo.Name = "half-done"
		return nil, errors.New("abort")
	})
	s.Error(err)
	s.Equal(before, st.Current())
	s.True(st.IsNewUser())

	_, err = st.Update(func(*profile.Document) (*profile.Document, error) { return nil, nil })
	s.ErrorIs(err, ErrNilDocument)
}

func (s *StoreTestSuite) Test_ReturnedDocumentDoesNotAliasStore() {
	st := s.open()
	defer st.Close()

	doc := profile.NewForOwner("Jane", "Engineer")
	_, err := st.Replace(doc)
	s.Require().NoError(err)

	doc.PersonalInfo.Name = "changed after commit"
	s.Equal("Jane", st.Current().PersonalInfo.Name)
}

func (s *StoreTestSuite) Test_Patch() {
	st := s.open()
	defer st.Close()

	next, err := st.Patch("settings.layout", profile.LayoutSlide)
	s.Require().NoError(err)
	s.Equal(profile.LayoutSlide, next.Settings.Layout)

	_, err = st.Patch("experience.0.id", "x")
	s.ErrorIs(err, profile.ErrImmutableField)
	s.Equal(profile.LayoutSlide, st.Current().Settings.Layout)
}

func (s *StoreTestSuite) Test_CompleteOnboarding() {
	st := s.open()
	s.Require().True(st.IsNewUser())

	doc, err := st.CompleteOnboarding("Jane Doe", "")
	s.Require().NoError(err)
	s.Equal("Your Title", doc.PersonalInfo.Title)
	s.Empty(doc.Projects)
	s.False(st.IsNewUser())

	st.Close()
	s.Equal(1, s.storage.saveCount())
}

func (s *StoreTestSuite) Test_Subscribers_SeeCommitsInOrder() {
	st := s.open()
	defer st.Close()

	var titles []string
	unsubscribe := st.Subscribe(func(doc *profile.Document) {
		titles = append(titles, doc.PersonalInfo.Title)
	})

	for _, title := range []string{"one", "two", "three"} {
		_, err := st.Patch("personalInfo.title", title)
		s.Require().NoError(err)
	}
	unsubscribe()
	_, err := st.Patch("personalInfo.title", "four")
	s.Require().NoError(err)

	s.Equal([]string{"one", "two", "three"}, titles)
}

func (s *StoreTestSuite) Test_ConcurrentUpdates_AreSerialized() {
	st := s.open()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := st.Update(func(prev *profile.Document) (*profile.Document, error) {
				prev.Hobbies = append(prev.Hobbies, profile.NewHobby())
				return prev, nil
			})
			s.NoError(err)
		}()
	}
	wg.Wait()
	st.Close()

	s.Len(st.Current().Hobbies, 50)
	stored, err := profile.Decode(s.storage.stored(profile.StorageKey))
	s.Require().NoError(err)
	s.Len(stored.Hobbies, 50, "the last snapshot always reaches storage")
	s.LessOrEqual(s.storage.saveCount(), 50)
}

func (s *StoreTestSuite) Test_SaveErrors_AreSwallowed() {
	s.storage.saveErr = errors.New("quota exceeded")
	st := s.open()

	_, err := st.Patch("personalInfo.name", "Still Works")
	s.NoError(err)
	st.Close()
	s.Equal("Still Works", st.Current().PersonalInfo.Name)
}

func (s *StoreTestSuite) Test_Close_IsIdempotent() {
	st := s.open()
	st.Close()
	st.Close()

	_, err := st.Patch("personalInfo.name", "after close")
	s.NoError(err)
	s.Equal("after close", st.Current().PersonalInfo.Name)
}
