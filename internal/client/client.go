package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/GriffinCanCode/umath/internal/infrastructure/resilience"
	"github.com/GriffinCanCode/umath/internal/logging"
	"github.com/GriffinCanCode/umath/internal/service"
	"github.com/GriffinCanCode/umath/internal/types"
)

var (
	// ErrUnavailable is returned while the circuit breaker rejects calls
	ErrUnavailable = errors.New("umath server unavailable")
	// ErrRateLimited is returned for 429 responses
	ErrRateLimited = errors.New("rate limited by umath server")
)

// Config defines client behavior
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	RetryWait    time.Duration
	RetryMaxWait time.Duration

	// RateLimit caps outgoing requests per second; 0 means unlimited
	RateLimit float64

	// FailureThreshold consecutive server failures open the breaker
	FailureThreshold uint32
	// BreakerTimeout is how long the breaker stays open before probing
	BreakerTimeout time.Duration
}

// DefaultConfig returns production-ready settings for baseURL
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:          baseURL,
		Timeout:          30 * time.Second,
		MaxRetries:       3,
		RetryWait:        500 * time.Millisecond,
		RetryMaxWait:     10 * time.Second,
		FailureThreshold: 5,
		BreakerTimeout:   30 * time.Second,
	}
}

// APIError is a non-2xx response from the server
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("umath api: %d %s", e.StatusCode, e.Message)
}

// Unwrap maps well-known statuses onto sentinel errors
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case e.StatusCode == http.StatusNotFound:
		return service.ErrServiceNotFound
	case e.StatusCode == http.StatusBadRequest:
		return service.ErrInvalidToolID
	default:
		return nil
	}
}

// Client is a resty-based client for the umath API
type Client struct {
	resty   *resty.Client
	limiter *rate.Limiter
	breaker *resilience.Breaker
	logger  *logging.Logger
}

// New creates a client. A nil logger discards output.
func New(cfg Config, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.Named("client")

	// pooled keep-alive transport
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil

	restyClient := resty.New()
	restyClient.
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(cfg.RetryMaxWait).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return resp != nil && (resp.StatusCode() == http.StatusTooManyRequests || resp.StatusCode() >= 500)
		}).
		SetHeader("User-Agent", "umath-client/1.0").
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal).
		SetTransport(retryClient.HTTPClient.Transport)

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		burst := int(cfg.RateLimit)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	breaker := resilience.New("umath-api", resilience.Settings{
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts resilience.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			var apiErr *APIError
			if errors.As(err, &apiErr) {
				return apiErr.StatusCode < 500 && apiErr.StatusCode != http.StatusTooManyRequests
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to resilience.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Client{
		resty:   restyClient,
		limiter: limiter,
		breaker: breaker,
		logger:  logger,
	}
}

// Execute runs a tool on the server. Catalog failures come back as a failed
// Result with a nil error, the same as a local registry.
func (c *Client) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	var result types.Result
	err := c.call(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetBody(types.ExecuteRequest{ToolID: toolID, Params: params}).
			SetResult(&result).
			Post("/services/execute")
	})
	if err != nil {
		msg := err.Error()
		return &types.Result{Success: false, Error: &msg}, err
	}
	return &result, nil
}

// Services lists the server's services, optionally filtered by category
func (c *Client) Services(ctx context.Context, category string) ([]types.Service, error) {
	var body struct {
		Services []types.Service `json:"services"`
	}
	err := c.call(ctx, func(req *resty.Request) (*resty.Response, error) {
		if category != "" {
			req.SetQueryParam("category", category)
		}
		return req.SetResult(&body).Get("/services")
	})
	if err != nil {
		return nil, err
	}
	return body.Services, nil
}

// Health returns the server's health document
func (c *Client) Health(ctx context.Context) (map[string]interface{}, error) {
	var body map[string]interface{}
	err := c.call(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetResult(&body).Get("/health")
	})
	return body, err
}

// BreakerState returns the current circuit breaker state
func (c *Client) BreakerState() resilience.State {
	return c.breaker.State()
}

// call rate-limits, then sends through the breaker and converts error
// responses into *APIError
func (c *Client) call(ctx context.Context, send func(*resty.Request) (*resty.Response, error)) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit error: %w", err)
	}

	err := c.breaker.Execute(func() error {
		apiErr := &APIError{}
		resp, err := send(c.resty.R().SetContext(ctx).SetError(apiErr))
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		if resp.IsError() {
			apiErr.StatusCode = resp.StatusCode()
			if apiErr.Message == "" {
				apiErr.Message = http.StatusText(resp.StatusCode())
			}
			return apiErr
		}
		return nil
	})

	if errors.Is(err, resilience.ErrCircuitOpen) || errors.Is(err, resilience.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return err
}
