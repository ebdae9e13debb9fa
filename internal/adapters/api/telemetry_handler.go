package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdata.app/internal/core/telemetry"
	"weatherdata.app/pkg/errors"
)

const originHeader = "X-Telemetry-Origin"

type dayParams struct {
	DeviceID string `uri:"deviceId" binding:"required,device"`
	Date     string `uri:"date" binding:"required"`
}

type metricParams struct {
	DeviceID string `uri:"deviceId" binding:"required,device"`
	Date     string `uri:"date" binding:"required"`
	Metric   string `uri:"metric" binding:"required,metric"`
}

func (p dayParams) toRequest() (telemetry.DayRequest, error) {
	date, err := telemetry.ParseDay(p.Date)
	if err != nil {
		return telemetry.DayRequest{}, err
	}
	return telemetry.DayRequest{DeviceID: p.DeviceID, Date: date}, nil
}

func (p metricParams) toRequest() (telemetry.DayRequest, error) {
	request, err := dayParams{DeviceID: p.DeviceID, Date: p.Date}.toRequest()
	if err != nil {
		return telemetry.DayRequest{}, err
	}
	metric, err := telemetry.ParseMetricKind(p.Metric)
	if err != nil {
		return telemetry.DayRequest{}, err
	}
	request.Metric = metric
	return request, nil
}

// getDayData handles GET /api/v1/devices/:deviceId/data/:date
func (s *HTTPServerAdapter) getDayData(c *gin.Context) {
	var params dayParams
	if err := c.ShouldBindUri(&params); err != nil {
		s.handleError(c, errors.NewValidationError("invalid path parameters: "+err.Error()))
		return
	}
	request, err := params.toRequest()
	if err != nil {
		s.handleError(c, err)
		return
	}

	records, err := s.telemetryUseCase.AllMetricsForDay(c.Request.Context(), request)
	if err != nil {
		slog.Error("Telemetry use case error", "error", err, "device", params.DeviceID, "date", params.Date)
		s.handleError(c, err)
		return
	}

	slog.Debug("Day data result", "device", params.DeviceID, "date", params.Date, "records", len(records))
	c.JSON(http.StatusOK, records)
}

// getMetricData handles GET /api/v1/devices/:deviceId/data/:date/:metric
func (s *HTTPServerAdapter) getMetricData(c *gin.Context) {
	var params metricParams
	if err := c.ShouldBindUri(&params); err != nil {
		s.handleError(c, errors.NewValidationError("invalid path parameters: "+err.Error()))
		return
	}
	request, err := params.toRequest()
	if err != nil {
		s.handleError(c, err)
		return
	}

	values, err := s.telemetryUseCase.OneMetricForDay(c.Request.Context(), request)
	if err != nil {
		slog.Error("Telemetry use case error", "error", err, "device", params.DeviceID,
			"date", params.Date, "metric", params.Metric)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, values)
}

// getRawMetric handles GET /api/v1/devices/:deviceId/raw/:date/:metric by streaming the CSV unchanged
func (s *HTTPServerAdapter) getRawMetric(c *gin.Context) {
	var params metricParams
	if err := c.ShouldBindUri(&params); err != nil {
		s.handleError(c, errors.NewValidationError("invalid path parameters: "+err.Error()))
		return
	}
	request, err := params.toRequest()
	if err != nil {
		s.handleError(c, err)
		return
	}

	stream, err := s.telemetryUseCase.OpenMetricStream(c.Request.Context(), request)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			slog.Error("Telemetry stream error", "error", err, "device", params.DeviceID,
				"date", params.Date, "metric", params.Metric)
		}
		s.handleError(c, err)
		return
	}
	defer func() {
		if cerr := stream.Close(); cerr != nil {
			slog.Warn("Failed to close telemetry stream", "error", cerr)
		}
	}()

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header(originHeader, string(stream.Origin))
	c.Status(http.StatusOK)

	// Headers are already sent, so a failed copy can only be logged.
	if _, err := io.Copy(c.Writer, stream.Body); err != nil {
		slog.Error("Failed to stream telemetry", "error", err, "device", params.DeviceID,
			"date", params.Date, "metric", params.Metric)
	}
}
