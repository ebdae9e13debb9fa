package telemetry

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"weatherdata.app/internal/ports"
	"weatherdata.app/pkg/errors"
)

type UseCase struct {
	resolver Resolver
	logger   ports.Logger
	metrics  ports.TelemetryMetrics
}

type UseCaseDependencies struct {
	Resolver Resolver
	Logger   ports.Logger
	Metrics  ports.TelemetryMetrics
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Resolver == nil {
		return nil, errors.NewValidationError("resolver is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		resolver: deps.Resolver,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
	}, nil
}

// OneMetricForDay returns one metric's values in file order. A day without data yields an empty slice.
func (uc *UseCase) OneMetricForDay(ctx context.Context, request DayRequest) ([]TimedValue, error) {
	if err := uc.validate(&request, true); err != nil {
		return nil, err
	}

	uc.logger.Debug("Getting metric for day",
		ports.F("device", request.DeviceID),
		ports.F("date", request.Date.Format(DateLayout)),
		ports.F("metric", request.Metric.String()))

	values := make([]TimedValue, 0)
	err := uc.decodeMetric(ctx, request.Key(request.Metric), func(v TimedValue) error {
		values = append(values, v)
		return nil
	})
	if err != nil {
		if errors.IsNotFoundError(err) {
			return []TimedValue{}, nil
		}
		uc.logger.Error("Failed to get metric for day",
			ports.F("device", request.DeviceID),
			ports.F("metric", request.Metric.String()),
			ports.F("error", err))
		return nil, fmt.Errorf("get %s for device %s: %w", request.Metric.PathName(), request.DeviceID, err)
	}

	return values, nil
}

// AllMetricsForDay resolves every metric concurrently and merges the values by timestamp.
// The first metric to fail cancels the others and fails the call.
func (uc *UseCase) AllMetricsForDay(ctx context.Context, request DayRequest) ([]WeatherRecord, error) {
	if err := uc.validate(&request, false); err != nil {
		return nil, err
	}

	uc.logger.Debug("Getting all metrics for day",
		ports.F("device", request.DeviceID),
		ports.F("date", request.Date.Format(DateLayout)))

	set := newRecordSet()
	g, gctx := errgroup.WithContext(ctx)
	for _, metric := range AllMetrics() {
		metric := metric
		g.Go(func() error {
			err := uc.decodeMetric(gctx, request.Key(metric), func(v TimedValue) error {
				set.add(metric, v)
				return nil
			})
			if errors.IsNotFoundError(err) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("%s: %w", metric.PathName(), err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.logger.Error("Failed to get all metrics for day",
			ports.F("device", request.DeviceID),
			ports.F("date", request.Date.Format(DateLayout)),
			ports.F("error", err))
		return nil, fmt.Errorf("get metrics for device %s: %w", request.DeviceID, err)
	}

	return set.sorted(), nil
}

// OpenMetricStream returns the resolved CSV without decoding it. The caller must Close it.
func (uc *UseCase) OpenMetricStream(ctx context.Context, request DayRequest) (*ResolvedStream, error) {
	if err := uc.validate(&request, true); err != nil {
		return nil, err
	}

	stream, err := uc.resolver.Resolve(ctx, request.Key(request.Metric))
	if err != nil {
		return nil, err
	}
	return stream, nil
}

func (uc *UseCase) decodeMetric(ctx context.Context, key StreamKey, fn func(TimedValue) error) error {
	stream, err := uc.resolver.Resolve(ctx, key)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stream.Close(); cerr != nil {
			uc.logger.Warn("Failed to close telemetry stream",
				ports.F("key", key.CacheKey()),
				ports.F("error", cerr))
		}
	}()

	if err := NewDecoder(stream.Body).Each(ctx, fn); err != nil {
		if errors.IsParseError(err) {
			uc.metrics.RecordParseFailure(key.Metric.PathName())
		}
		return err
	}

	uc.logger.Debug("Decoded telemetry stream",
		ports.F("key", key.CacheKey()),
		ports.F("origin", string(stream.Origin)))
	return nil
}

func (uc *UseCase) validate(request *DayRequest, needMetric bool) error {
	request.Normalize()
	if err := request.IsValid(); err != nil {
		return errors.NewValidationError("invalid day request: " + err.Error())
	}
	if needMetric {
		if err := request.ValidateMetric(); err != nil {
			return errors.NewValidationError("invalid day request: " + err.Error())
		}
	}
	return nil
}
