package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/musicforge/musicgen-be/internal/api/dto"
	"github.com/musicforge/musicgen-be/internal/generator"
)

// GenerateTrack handles POST /music/generate
// Starts an asynchronous generation job and returns immediately
func (h *MusicHandler) GenerateTrack(c *gin.Context) {
	var req dto.GenerateTrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid generation request", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Invalid request body",
			"detail": err.Error(),
		})
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Prompt cannot be empty",
		})
		return
	}

	duration := h.limits.DefaultDuration
	if req.Duration != nil {
		duration = *req.Duration
	}

	track := h.generator.Generate(prompt, duration)

	c.JSON(http.StatusOK, dto.GenerateTrackResponse{
		Success:                 true,
		Message:                 fmt.Sprintf("Music generation started for prompt: '%s'", prompt),
		TrackID:                 track.TrackID,
		Prompt:                  track.Prompt,
		Duration:                track.Duration,
		EstimatedProcessingTime: track.EstimatedSeconds,
		Status:                  track.Status,
		DownloadURL:             nil,
	})
}

// GetTrackStatus handles GET /music/status/:track_id
// Returns the current progress of a generation job
func (h *MusicHandler) GetTrackStatus(c *gin.Context) {
	trackID := c.Param("track_id")

	track, err := h.generator.Status(trackID)
	if err != nil {
		if errors.Is(err, generator.ErrTrackNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": fmt.Sprintf("Track not found: %s", trackID),
			})
			return
		}

		h.logger.Error("Failed to get track status",
			slog.String("track_id", trackID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get track status",
		})
		return
	}

	var downloadURL *string
	if track.Completed() {
		downloadURL = &track.DownloadURL
	}

	c.JSON(http.StatusOK, dto.TrackStatusResponse{
		TrackID:             track.TrackID,
		Status:              track.Status,
		Progress:            track.Progress,
		Prompt:              track.Prompt,
		Duration:            track.Duration,
		CreatedAt:           track.CreatedAt.Format(time.RFC3339),
		EstimatedCompletion: track.EstimatedCompletion.Format(time.RFC3339),
		DownloadURL:         downloadURL,
	})
}

// DownloadTrack handles GET /downloads/:filename
// Streams a finished artifact as an attachment
func (h *MusicHandler) DownloadTrack(c *gin.Context) {
	filename := c.Param("filename")

	// Reject path traversal and anything that is not an mp3 artifact name.
	if filename != filepath.Base(filename) || !strings.HasSuffix(filename, ".mp3") {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid filename",
		})
		return
	}

	path := h.generator.ArtifactPath(filename)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("File not found: %s", filename),
		})
		return
	}

	c.Header("Content-Type", "audio/mpeg")
	c.FileAttachment(path, filename)
}

// ServiceInfo handles GET /music/
// Advertises the service's generation capabilities
func (h *MusicHandler) ServiceInfo(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ServiceInfoResponse{
		Service:          "Music AI Generator",
		Version:          h.version,
		SupportedFormats: generator.SupportedFormats(),
		SupportedGenres:  generator.SupportedGenres(),
		SupportedMoods:   generator.SupportedMoods(),
		MaxDuration:      h.limits.MaxDuration,
		MinDuration:      h.limits.MinDuration,
		Status:           "active",
	})
}
