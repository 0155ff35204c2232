package generator

import (
	"context"
	"log/slog"
	"time"
)

// Config holds generation service configuration
type Config struct {
	Logger       *slog.Logger
	DownloadsDir string
}

// Service ties the track store, duration estimator, progress simulator and
// artifact writer together behind the two operations the API layer needs:
// starting a generation and polling its status. It is constructed once at
// process start and passed down explicitly.
type Service struct {
	logger    *slog.Logger
	store     *Store
	writer    *ArtifactWriter
	simulator *Simulator
}

// NewService creates a generation service with a fresh, empty track store.
func NewService(cfg *Config) *Service {
	store := NewStore()
	writer := NewArtifactWriter(cfg.DownloadsDir)

	return &Service{
		logger:    cfg.Logger,
		store:     store,
		writer:    writer,
		simulator: NewSimulator(cfg.Logger, store, writer),
	}
}

// Generate creates a new track record, launches its progress simulation and
// returns the record snapshot immediately. The caller is expected to have
// validated the prompt and duration at the boundary.
func (s *Service) Generate(prompt string, duration int) Track {
	estimated := EstimateProcessingTime(duration, prompt)
	track := s.store.Create(prompt, duration, estimated)

	s.simulator.Launch(track.TrackID, time.Duration(estimated)*time.Second)

	s.logger.Info("Music generation started",
		slog.String("track_id", track.TrackID),
		slog.Int("duration", duration),
		slog.Int("estimated_seconds", estimated),
	)

	return track
}

// Status returns a point-in-time snapshot of the track, or ErrTrackNotFound.
func (s *Service) Status(trackID string) (Track, error) {
	return s.store.Get(trackID)
}

// TrackCount returns the number of tracks created since process start.
func (s *Service) TrackCount() int {
	return s.store.Len()
}

// ArtifactPath resolves an artifact filename inside the downloads directory.
func (s *Service) ArtifactPath(filename string) string {
	return s.writer.Path(filename)
}

// Shutdown waits for in-flight simulations to finish, bounded by ctx.
func (s *Service) Shutdown(ctx context.Context) error {
	return s.simulator.Shutdown(ctx)
}

// SupportedFormats lists the output formats advertised by the service.
func SupportedFormats() []string {
	return []string{"mp3", "wav"}
}

// SupportedGenres lists the music genres the service advertises.
func SupportedGenres() []string {
	return []string{
		"pop", "rock", "jazz", "classical", "electronic", "hip-hop",
		"country", "reggae", "blues", "folk", "ambient", "instrumental",
	}
}

// SupportedMoods lists the track moods the service advertises.
func SupportedMoods() []string {
	return []string{
		"happy", "sad", "energetic", "relaxing", "dramatic", "peaceful",
		"mysterious", "uplifting", "melancholic", "triumphant", "romantic",
	}
}
