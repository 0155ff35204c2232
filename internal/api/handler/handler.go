package handler

import (
	"log/slog"

	"github.com/musicforge/musicgen-be/internal/generator"
)

// Limits carries the generation bounds advertised by the capability endpoint
// and applied as request defaults. Schema-level bounds live in the DTO
// binding tags.
type Limits struct {
	MinDuration     int
	MaxDuration     int
	DefaultDuration int
}

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger    *slog.Logger
	Generator *generator.Service
	AppName   string
	Version   string
	Limits    Limits
}

// MusicHandler handles music generation HTTP requests
type MusicHandler struct {
	logger    *slog.Logger
	generator *generator.Service
	version   string
	limits    Limits
}

// NewMusicHandler creates a new MusicHandler instance
func NewMusicHandler(deps *Dependencies) *MusicHandler {
	return &MusicHandler{
		logger:    deps.Logger,
		generator: deps.Generator,
		version:   deps.Version,
		limits:    deps.Limits,
	}
}
