package dto

// GenerateTrackRequest is the body of POST /music/generate. Schema bounds are
// enforced by binding tags; whitespace-only prompts are rejected separately
// by the handler after trimming.
type GenerateTrackRequest struct {
	Prompt   string `json:"prompt" binding:"required,min=1,max=500"`
	Duration *int   `json:"duration" binding:"omitempty,gte=5,lte=300"`
}

// GenerateTrackResponse acknowledges that generation started.
type GenerateTrackResponse struct {
	Success                 bool    `json:"success"`
	Message                 string  `json:"message"`
	TrackID                 string  `json:"track_id"`
	Prompt                  string  `json:"prompt"`
	Duration                int     `json:"duration"`
	EstimatedProcessingTime int     `json:"estimated_processing_time"`
	Status                  string  `json:"status"`
	DownloadURL             *string `json:"download_url"`
}

// TrackStatusResponse is a point-in-time snapshot of a generation job.
// Timestamps are RFC 3339. DownloadURL is null until the track completes.
type TrackStatusResponse struct {
	TrackID             string  `json:"track_id"`
	Status              string  `json:"status"`
	Progress            int     `json:"progress"`
	Prompt              string  `json:"prompt"`
	Duration            int     `json:"duration"`
	CreatedAt           string  `json:"created_at"`
	EstimatedCompletion string  `json:"estimated_completion"`
	DownloadURL         *string `json:"download_url"`
}

// ServiceInfoResponse describes the service's capabilities.
type ServiceInfoResponse struct {
	Service          string   `json:"service"`
	Version          string   `json:"version"`
	SupportedFormats []string `json:"supported_formats"`
	SupportedGenres  []string `json:"supported_genres"`
	SupportedMoods   []string `json:"supported_moods"`
	MaxDuration      int      `json:"max_duration"`
	MinDuration      int      `json:"min_duration"`
	Status           string   `json:"status"`
}
