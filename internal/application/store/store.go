// Package store holds the single in-memory profile document and persists it
// in the background after every committed update.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/dynamic-profile/internal/application/service"
	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

const persistTimeout = 10 * time.Second

var ErrNilDocument = errors.New("updater returned no document")

// Updater derives the next document from a private copy of the previous one.
// Returning an error aborts the update.
type Updater func(prev *profile.Document) (*profile.Document, error)

// Subscriber is called after every committed update with a copy of the new
// document.
type Subscriber func(doc *profile.Document)

type subscription struct {
	id int
	fn Subscriber
}

type Store struct {
	mu      sync.Mutex
	doc     *profile.Document
	newUser bool
	closed  bool
	subs    []subscription
	nextSub int

	// notifyMu keeps subscriber calls in commit order.
	notifyMu sync.Mutex

	storage service.DocumentStorage
	key     string
	logger  logger.Logger

	pendingMu sync.Mutex
	pending   *profile.Document
	wake      chan struct{}
	done      chan struct{}
}

// New loads the document stored under key and starts the persister. Load
// failures are logged and fall back to the demo document.
func New(ctx context.Context, storage service.DocumentStorage, key string, log logger.Logger) *Store {
	if key == "" {
		key = profile.StorageKey
	}
	s := &Store{
		storage: storage,
		key:     key,
		logger:  log.With(zap.String("storage_key", key)),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	s.doc, s.newUser = s.load(ctx)
	go s.persistLoop()
	return s
}

func (s *Store) load(ctx context.Context) (*profile.Document, bool) {
	raw, err := s.storage.Load(ctx, s.key)
	if errors.Is(err, service.ErrDocumentNotFound) {
		s.logger.Info("No stored profile, starting with the demo document")
		return profile.Default(), true
	}
	if err != nil {
		s.logger.Error("Failed to read stored profile, using the demo document", err)
		return profile.Default(), false
	}
	doc, err := profile.Decode(raw)
	if err != nil {
		s.logger.Error("Failed to parse stored profile, using the demo document", err)
		return profile.Default(), false
	}
	return doc, false
}

// Current returns a deep copy of the current document.
func (s *Store) Current() *profile.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// IsNewUser reports whether the document is still the unsaved demo seed.
func (s *Store) IsNewUser() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.newUser
}

func (s *Store) Key() string {
	return s.key
}

// Update commits fn's result as the new document, notifies subscribers and
// schedules persistence. The committed document is returned as a copy.
func (s *Store) Update(fn Updater) (*profile.Document, error) {
	s.mu.Lock()
	next, err := fn(s.doc.Clone())
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if next == nil {
		s.mu.Unlock()
		return nil, ErrNilDocument
	}
	committed := next.Clone()
	committed.EnsureIDs()
	s.doc = committed
	s.newUser = false
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.schedule(committed)

	s.notifyMu.Lock()
	s.mu.Unlock()
	for _, sub := range subs {
		sub.fn(committed.Clone())
	}
	s.notifyMu.Unlock()

	return committed.Clone(), nil
}

// Replace swaps in doc wholesale.
func (s *Store) Replace(doc *profile.Document) (*profile.Document, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	return s.Update(func(*profile.Document) (*profile.Document, error) {
		return doc, nil
	})
}

// Patch sets the value at a dotted JSON path, e.g. "settings.theme".
func (s *Store) Patch(path string, value any) (*profile.Document, error) {
	return s.Update(func(prev *profile.Document) (*profile.Document, error) {
		return profile.Patch(prev, path, value)
	})
}

// CompleteOnboarding replaces the demo document with an empty profile for
// the new owner and starts persisting.
func (s *Store) CompleteOnboarding(name, title string) (*profile.Document, error) {
	return s.Replace(profile.NewForOwner(name, title))
}

// Subscribe registers fn for committed updates. The returned func removes it.
// fn must not call Update.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Close stops the persister after writing the last pending snapshot.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.wake)
	s.mu.Unlock()
	<-s.done
}

// schedule must be called with s.mu held.
func (s *Store) schedule(doc *profile.Document) {
	if s.closed {
		s.logger.Warn("Store closed, update not persisted")
		return
	}
	s.pendingMu.Lock()
	s.pending = doc
	s.pendingMu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Store) takePending() *profile.Document {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	doc := s.pending
	s.pending = nil
	return doc
}

func (s *Store) persistLoop() {
	defer close(s.done)
	for range s.wake {
		if doc := s.takePending(); doc != nil {
			s.persist(doc)
		}
	}
	if doc := s.takePending(); doc != nil {
		s.persist(doc)
	}
}

func (s *Store) persist(doc *profile.Document) {
	raw, err := profile.Encode(doc)
	if err != nil {
		s.logger.Error("Failed to encode profile", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.storage.Save(ctx, s.key, raw); err != nil {
		s.logger.Error("Failed to persist profile", err, zap.Int("bytes", len(raw)))
		return
	}
	s.logger.Debug("Profile persisted", zap.Int("bytes", len(raw)))
}
