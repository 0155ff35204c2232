package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/musicforge/musicgen-be/internal/api/handler"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())

	// Root endpoint - API welcome and liveness
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to Music AI Generator Backend",
			"status":  "running",
			"version": deps.Version,
		})
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": deps.AppName,
		})
	})

	// Initialize music handler
	musicHandler := handler.NewMusicHandler(deps)

	music := r.Group("/music")
	{
		// POST /music/generate - Start a generation job
		music.POST("/generate", musicHandler.GenerateTrack)

		// GET /music/status/:track_id - Poll generation progress
		music.GET("/status/:track_id", musicHandler.GetTrackStatus)

		// GET /music/ - Service capability descriptor
		music.GET("/", musicHandler.ServiceInfo)
	}

	// GET /downloads/:filename - Serve finished artifacts
	r.GET("/downloads/:filename", musicHandler.DownloadTrack)

	return r
}
