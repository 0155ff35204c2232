package generator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// progressSteps divides the estimated processing time into equal slices, so
// progress advances 0, 10, ..., 100.
const progressSteps = 10

// Simulator drives the background progress simulation for in-flight tracks.
// One goroutine is launched per track and always runs to completion; there is
// no cancellation. The registry of running simulations exists so shutdown can
// drain (or at least account for) in-flight work instead of dropping
// goroutines on the floor.
type Simulator struct {
	logger *slog.Logger
	store  *Store
	writer *ArtifactWriter

	wg      sync.WaitGroup
	mu      sync.Mutex
	running map[string]struct{}
}

// NewSimulator creates a simulator bound to the store it mutates and the
// writer it invokes on the final step.
func NewSimulator(logger *slog.Logger, store *Store, writer *ArtifactWriter) *Simulator {
	return &Simulator{
		logger:  logger,
		store:   store,
		writer:  writer,
		running: make(map[string]struct{}),
	}
}

// Launch starts the progress simulation for a track in its own goroutine and
// returns immediately. The estimated duration is split into progressSteps
// equal sleeps.
func (s *Simulator) Launch(trackID string, estimated time.Duration) {
	s.mu.Lock()
	s.running[trackID] = struct{}{}
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			s.mu.Lock()
			delete(s.running, trackID)
			s.mu.Unlock()
		}()

		s.run(trackID, estimated)
	}()
}

// InFlight returns the number of simulations that have not finished yet.
func (s *Simulator) InFlight() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.running)
}

// Shutdown blocks until every running simulation has finished or the context
// expires. Simulations are never interrupted, only waited on.
func (s *Simulator) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("simulations still in flight after shutdown wait: %d", s.InFlight())
	}
}

// run advances the track's progress in fixed steps and finalizes the record
// on the last step. A missing record stops the simulation silently. If the
// artifact cannot be written, the track stays in the processing state.
func (s *Simulator) run(trackID string, estimated time.Duration) {
	stepDelay := estimated / progressSteps

	for step := 0; step <= progressSteps; step++ {
		progress := step * 100 / progressSteps

		if step < progressSteps {
			if !s.store.setProgress(trackID, progress) {
				s.logger.Warn("Track record missing, stopping simulation",
					slog.String("track_id", trackID),
				)
				return
			}

			time.Sleep(stepDelay)
			continue
		}

		track, err := s.store.Get(trackID)
		if err != nil {
			s.logger.Warn("Track record missing, stopping simulation",
				slog.String("track_id", trackID),
			)
			return
		}

		downloadURL, err := s.writer.Write(trackID, track.Duration, track.Prompt)
		if err != nil {
			s.logger.Error("Failed to write track artifact",
				slog.String("track_id", trackID),
				slog.String("error", err.Error()),
			)
			return
		}

		s.store.complete(trackID, downloadURL)

		s.logger.Info("Track generation completed",
			slog.String("track_id", trackID),
			slog.String("download_url", downloadURL),
		)
	}
}
