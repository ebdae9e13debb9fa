package api

import (
	"errors"
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"weatherdata.app/internal/ports"
	errorspkg "weatherdata.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	var statusCode int
	var message string

	if !errors.As(err, &appErr) {
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
		s.writeError(c, statusCode, message)
		return
	}

	switch appErr.Type {
	case errorspkg.ValidationError:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errorspkg.NotFoundError:
		statusCode = http.StatusNotFound
		message = appErr.Message
	case errorspkg.ParseError:
		statusCode = http.StatusBadGateway
		message = "upstream data malformed"
	case errorspkg.StorageError:
		statusCode = http.StatusServiceUnavailable
		message = "storage unavailable"
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	s.writeError(c, statusCode, message)
}

func (s *HTTPServerAdapter) writeError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Error: message, RequestID: c.GetString(requestIDContextKey)})
}

// getMetrics handles GET /api/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	slog.Debug("Metrics endpoint called")

	metrics, err := s.metricsCollector.GetMetrics(c.Request.Context())
	if err != nil {
		slog.Error("Error getting metrics", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// getHealth handles GET /health; any unhealthy component turns the response into a 503
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	if !ports.AllHealthy(results) {
		slog.Warn("Health check failed", "components", len(results))
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy", Components: results})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Components: results})
}
