package external

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"weatherdata.app/pkg/errors"
)

var errRetryableStatus = stderrors.New("retryable status")

// BackoffConfig controls exponential backoff between blob store attempts
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// HTTPBlobStoreParams holds parameters for creating the HTTP blob store
type HTTPBlobStoreParams struct {
	BaseURL string
	// Query is appended to every request, e.g. a shared access signature. It is never logged.
	Query   string
	Timeout time.Duration
	Backoff BackoffConfig
	Client  *http.Client
}

// HTTPBlobStore implements BlobStore port over plain HTTP object storage (HEAD/GET)
type HTTPBlobStore struct {
	baseURL string
	query   string
	client  *http.Client
	backoff BackoffConfig
	breaker *gobreaker.CircuitBreaker
}

func NewHTTPBlobStore(params HTTPBlobStoreParams) (*HTTPBlobStore, error) {
	base, err := url.Parse(params.BaseURL)
	if err != nil || (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, errors.NewConfigurationError(fmt.Sprintf("invalid storage base URL %q", params.BaseURL), err)
	}
	if params.Backoff.MaxRetries < 0 {
		return nil, errors.NewConfigurationError("max retries cannot be negative", nil)
	}

	backoff := params.Backoff
	if backoff.InitialInterval <= 0 {
		backoff.InitialInterval = 200 * time.Millisecond
	}
	if backoff.MaxInterval <= 0 {
		backoff.MaxInterval = 5 * time.Second
	}

	client := params.Client
	if client == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.ResponseHeaderTimeout = params.Timeout
		client = &http.Client{Transport: transport}
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "blob-store",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     30 * time.Second,
	})

	return &HTTPBlobStore{
		baseURL: strings.TrimRight(params.BaseURL, "/"),
		query:   strings.TrimPrefix(params.Query, "?"),
		client:  client,
		backoff: backoff,
		breaker: breaker,
	}, nil
}

// Exists issues a HEAD request; 404 means the blob is absent
func (s *HTTPBlobStore) Exists(ctx context.Context, blobPath string) (bool, error) {
	resp, err := s.do(ctx, http.MethodHead, blobPath)
	if err != nil {
		return false, err
	}
	drainAndClose(resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, nil
	default:
		return false, errors.NewStorageError(fmt.Sprintf("HEAD %s returned status %d", blobPath, resp.StatusCode), nil)
	}
}

// Open streams the blob body. The caller owns the returned reader.
func (s *HTTPBlobStore) Open(ctx context.Context, blobPath string) (io.ReadCloser, error) {
	resp, err := s.do(ctx, http.MethodGet, blobPath)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		drainAndClose(resp.Body)
		return nil, errors.NewNotFoundError("blob not found: " + blobPath)
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return resp.Body, nil
	default:
		drainAndClose(resp.Body)
		return nil, errors.NewStorageError(fmt.Sprintf("GET %s returned status %d", blobPath, resp.StatusCode), nil)
	}
}

// Ping reports whether the store is reachable and the circuit is closed
func (s *HTTPBlobStore) Ping(ctx context.Context) error {
	if s.breaker.State() == gobreaker.StateOpen {
		return errors.NewStorageError("blob store circuit breaker is open", nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.urlFor(""), nil)
	if err != nil {
		return errors.NewStorageError("build ping request", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return errors.NewStorageError("blob store unreachable", err)
	}
	drainAndClose(resp.Body)

	if resp.StatusCode >= 500 {
		return errors.NewStorageError(fmt.Sprintf("blob store returned status %d", resp.StatusCode), nil)
	}
	return nil
}

func (s *HTTPBlobStore) Name() string {
	return "http"
}

// do executes the request with retries, exponential backoff and a circuit breaker.
// Only transport errors, 429 and 5xx count as failures.
func (s *HTTPBlobStore) do(ctx context.Context, method, blobPath string) (*http.Response, error) {
	target := s.urlFor(blobPath)

	var lastErr error
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, method, target, nil)
		if err != nil {
			return nil, errors.NewStorageError("build blob request", err)
		}

		result, err := s.breaker.Execute(func() (interface{}, error) {
			resp, execErr := s.client.Do(req)
			if execErr != nil {
				return nil, execErr
			}
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				drainAndClose(resp.Body)
				return nil, fmt.Errorf("%w: %d", errRetryableStatus, resp.StatusCode)
			}
			return resp, nil
		})
		if err == nil {
			return result.(*http.Response), nil
		}

		if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, errors.NewStorageError("blob store circuit breaker is open", err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		lastErr = err
		if attempt >= s.backoff.MaxRetries {
			return nil, errors.NewStorageError(fmt.Sprintf("%s %s failed after %d attempts", method, blobPath, attempt+1), lastErr)
		}

		delay := s.backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if delay > s.backoff.MaxInterval {
			delay = s.backoff.MaxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func (s *HTTPBlobStore) urlFor(blobPath string) string {
	segments := strings.Split(strings.Trim(blobPath, "/"), "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	target := s.baseURL + "/" + strings.Join(segments, "/")
	if s.query != "" {
		target += "?" + s.query
	}
	return target
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 64*1024))
	_ = body.Close()
}
