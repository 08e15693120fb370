package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/slides/internal/auth"
	"github.com/slides/internal/service"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	slideshows *service.SlideshowService
	gate       *auth.Gate
	logger     *slog.Logger
}

// NewAPI constructs a handler set with shared services.
func NewAPI(slideshows *service.SlideshowService, gate *auth.Gate, logger *slog.Logger) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{
		slideshows: slideshows,
		gate:       gate,
		logger:     logger.With("component", "handler"),
	}
}

// AuthEnabled reports whether authoring routes are password protected.
func (a *API) AuthEnabled() bool {
	return a.gate.Enabled()
}

func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}
	if _, exists := payload["authEnabled"]; !exists {
		payload["authEnabled"] = a.AuthEnabled()
	}

	c.HTML(status, template, payload)
}
