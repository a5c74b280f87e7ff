package domain

import (
	"errors"
	"sync"
)

var (
	// ErrActivityNotFound is returned when the named activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp is returned when the email is already on the roster.
	ErrAlreadySignedUp = errors.New("participant already signed up")
	// ErrNotSignedUp is returned when the email is absent from the roster.
	ErrNotSignedUp = errors.New("participant not signed up")
)

// Store holds the process-wide activity state in memory.
// The HTTP server handles requests concurrently, so every mutation runs
// under the write lock together with its precondition checks.
type Store struct {
	mu         sync.RWMutex
	activities map[string]Activity
}

// NewStore constructs a Store populated with the seed catalogue.
func NewStore() *Store {
	store := &Store{}
	store.Reset()
	return store
}

// Reset restores the seed state. Tests use it to isolate cases that share a store.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activities = make(map[string]Activity, len(seedActivities))
	for _, activity := range seedActivities {
		roster := make([]string, len(activity.Participants))
		copy(roster, activity.Participants)
		activity.Participants = roster
		s.activities[activity.Name] = activity
	}
}

// Snapshot returns a deep copy of the full current state keyed by activity name.
func (s *Store) Snapshot() map[string]Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Activity, len(s.activities))
	for name, activity := range s.activities {
		roster := make([]string, len(activity.Participants))
		copy(roster, activity.Participants)
		activity.Participants = roster
		out[name] = activity
	}
	return out
}

// Contains reports whether the named activity exists.
func (s *Store) Contains(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.activities[name]
	return ok
}

// SignUp appends email to the named activity's roster and returns the roster
// size after the append.
func (s *Store) SignUp(name, email string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return 0, ErrActivityNotFound
	}
	for _, existing := range activity.Participants {
		if existing == email {
			return 0, ErrAlreadySignedUp
		}
	}

	activity.Participants = append(activity.Participants, email)
	s.activities[name] = activity
	return len(activity.Participants), nil
}

// Unregister removes email from the named activity's roster and returns the
// roster size after the removal. Signup order of the remaining participants
// is preserved.
func (s *Store) Unregister(name, email string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return 0, ErrActivityNotFound
	}

	index := -1
	for i, existing := range activity.Participants {
		if existing == email {
			index = i
			break
		}
	}
	if index < 0 {
		return 0, ErrNotSignedUp
	}

	activity.Participants = append(activity.Participants[:index], activity.Participants[index+1:]...)
	s.activities[name] = activity
	return len(activity.Participants), nil
}
