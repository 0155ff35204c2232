package generator

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const trackIDPrefix = "track_"

// Store holds every track record created during the process lifetime, keyed
// by track id. Records are never deleted. Each record has a single writer
// (its own simulation goroutine) and many readers (status polling), so all
// access goes through the store's lock and reads return copies to prevent
// torn updates.
type Store struct {
	mu     sync.RWMutex
	tracks map[string]*Track
}

// NewStore creates an empty track store.
func NewStore() *Store {
	return &Store{
		tracks: make(map[string]*Track),
	}
}

// Create inserts a new track in the processing state and returns a copy of
// the record. Ids are guaranteed unique within the store.
func (s *Store) Create(prompt string, duration, estimatedSeconds int) Track {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	id := newTrackID()
	for _, exists := s.tracks[id]; exists; _, exists = s.tracks[id] {
		id = newTrackID()
	}

	track := &Track{
		TrackID:             id,
		Prompt:              prompt,
		Duration:            duration,
		Status:              TrackStatusProcessing,
		Progress:            0,
		EstimatedSeconds:    estimatedSeconds,
		CreatedAt:           now,
		EstimatedCompletion: now.Add(time.Duration(estimatedSeconds) * time.Second),
	}
	s.tracks[id] = track

	return *track
}

// Get returns a copy of the track record, or ErrTrackNotFound.
func (s *Store) Get(trackID string) (Track, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	track, ok := s.tracks[trackID]
	if !ok {
		return Track{}, ErrTrackNotFound
	}

	return *track, nil
}

// Len returns the number of records ever created.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.tracks)
}

// setProgress advances the track's progress percentage. It reports false when
// the record is missing so the caller can stop simulating. Progress never
// moves backwards.
func (s *Store) setProgress(trackID string, progress int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	track, ok := s.tracks[trackID]
	if !ok {
		return false
	}

	if progress > track.Progress {
		track.Progress = progress
	}

	return true
}

// complete transitions the track to its terminal state with the artifact's
// download URL. It reports false when the record is missing.
func (s *Store) complete(trackID, downloadURL string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	track, ok := s.tracks[trackID]
	if !ok {
		return false
	}

	track.Status = TrackStatusCompleted
	track.Progress = 100
	track.DownloadURL = downloadURL

	return true
}

// newTrackID generates an id of the form track_<8 hex chars>.
func newTrackID() string {
	hexID := strings.ReplaceAll(uuid.New().String(), "-", "")
	return trackIDPrefix + hexID[:8]
}
