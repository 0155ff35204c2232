package generator

import (
	"errors"
	"time"
)

const (
	// TrackStatusProcessing is the initial state of every generation job.
	TrackStatusProcessing = "processing"
	// TrackStatusCompleted is the only terminal state. Once reached, the
	// record is never mutated again.
	TrackStatusCompleted = "completed"
)

var (
	// ErrTrackNotFound is returned when a track id is not present in the store
	ErrTrackNotFound = errors.New("track not found")
)

// Track represents one music-generation request and its tracked lifecycle.
// The id doubles as the artifact's base filename.
type Track struct {
	TrackID             string
	Prompt              string
	Duration            int // requested track length in seconds
	Status              string
	Progress            int // 0..100, advances in steps of 10
	EstimatedSeconds    int
	CreatedAt           time.Time
	EstimatedCompletion time.Time
	DownloadURL         string // empty until the track is completed
}

// Completed reports whether the track reached its terminal state.
func (t *Track) Completed() bool {
	return t.Status == TrackStatusCompleted
}
