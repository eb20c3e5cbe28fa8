package session

import (
	"context"
	"sync"
	"time"

	"gebeya/internal/domain/entity"
	"gebeya/pkg/logger"
)

// Store caches one signed-in identity per browser context, in one of two
// scopes chosen at login. The remember scope outlives the browser session
// (persistent cookie); the transient scope lasts only as long as the session
// cookie. The two scopes are mutually exclusive for a given context, and the
// remember scope wins on read.
type Store struct {
	mu        sync.RWMutex
	remember  map[string]*entry
	transient map[string]*entry
	ttl       time.Duration
	bus       *Bus
}

type entry struct {
	session   entity.Session
	expiresAt time.Time
}

func NewStore(ttl time.Duration, bus *Bus) *Store {
	return &Store{
		remember:  make(map[string]*entry),
		transient: make(map[string]*entry),
		ttl:       ttl,
		bus:       bus,
	}
}

// Save persists the session into the scope selected by remember and clears
// the other scope for the same context.
func (s *Store) Save(contextID string, sess entity.Session, remember bool) {
	sess.Remember = remember

	s.mu.Lock()
	defer s.mu.Unlock()

	e := &entry{session: sess, expiresAt: time.Now().Add(s.ttl)}
	if remember {
		s.remember[contextID] = e
		delete(s.transient, contextID)
	} else {
		s.transient[contextID] = e
		delete(s.remember, contextID)
	}
}

// Load resolves the cached session for a context. The remember scope takes
// precedence when both are somehow populated.
func (s *Store) Load(contextID string) (*entity.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e, ok := s.remember[contextID]; ok && time.Now().Before(e.expiresAt) {
		sess := e.session
		return &sess, true
	}
	if e, ok := s.transient[contextID]; ok && time.Now().Before(e.expiresAt) {
		sess := e.session
		return &sess, true
	}
	return nil, false
}

// Clear empties both scopes for the context.
func (s *Store) Clear(contextID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.remember, contextID)
	delete(s.transient, contextID)
}

// Partial carries the profile fields a successful edit may change. Nil
// fields are left untouched. The photo is a server-confirmed URL only.
type Partial struct {
	FirstName       *string
	LastName        *string
	Email           *string
	PhoneNumber     *string
	Gender          *string
	ProfilePhotoURL *string
}

// Update merges the partial into whichever scope currently holds the
// session, re-persists it, and broadcasts a profile-updated event so other
// live views of the same context converge without a reload.
func (s *Store) Update(contextID string, p Partial) (*entity.Session, bool) {
	s.mu.Lock()

	e, ok := s.remember[contextID]
	if !ok {
		e, ok = s.transient[contextID]
	}
	if !ok {
		s.mu.Unlock()
		return nil, false
	}

	merge(&e.session, p)
	updated := e.session
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(Event{
			Type:      EventProfileUpdated,
			ContextID: contextID,
			Session:   updated,
		})
	}
	return &updated, true
}

func merge(sess *entity.Session, p Partial) {
	if p.FirstName != nil {
		sess.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		sess.LastName = *p.LastName
	}
	if p.Email != nil {
		sess.Email = *p.Email
	}
	if p.PhoneNumber != nil {
		sess.PhoneNumber = *p.PhoneNumber
	}
	if p.Gender != nil {
		sess.Gender = *p.Gender
	}
	if p.ProfilePhotoURL != nil {
		sess.ProfilePhotoURL = *p.ProfilePhotoURL
	}
}

// StartSweeper evicts expired entries periodically until ctx is done.
func (s *Store) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (s *Store) sweep() {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.remember {
		if now.After(e.expiresAt) {
			delete(s.remember, id)
			removed++
		}
	}
	for id, e := range s.transient {
		if now.After(e.expiresAt) {
			delete(s.transient, id)
			removed++
		}
	}
	if removed > 0 {
		logger.Debug("session sweep removed %d expired entries", removed)
	}
}
