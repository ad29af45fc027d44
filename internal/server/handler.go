package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type generateRequest struct {
	Goal string `json:"goal"`
}

// NewRouter wires the generation endpoint. The route mirrors the hosted
// function path so existing clients keep working.
func NewRouter(gen PathGenerator, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	r.POST("/api/functions/v1/generate-learning-path", generateHandler(gen, log))
	r.POST("/functions/v1/generate-learning-path", generateHandler(gen, log))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

func generateHandler(gen PathGenerator, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req generateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		goal := strings.TrimSpace(req.Goal)
		if goal == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Goal is required"})
			return
		}

		path, err := gen.GeneratePath(c.Request.Context(), goal)
		if err != nil {
			log.Error().Err(err).Str("goal", goal).Msg("path generation failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		log.Info().Str("goal", goal).Int("milestones", len(path.Milestones)).Msg("path generated")
		c.JSON(http.StatusOK, path)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Run loads config, builds the generator, and serves until the listener
// stops.
func Run() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.NewConsoleWriter()).Level(level).With().Timestamp().Logger()

	gin.SetMode(gin.ReleaseMode)
	router := NewRouter(NewOpenAIGenerator(cfg), log)

	log.Info().Str("port", cfg.Port).Str("model", cfg.Model).Msg("path generation service listening")
	return router.Run(":" + cfg.Port)
}
