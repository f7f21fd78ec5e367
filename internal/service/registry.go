package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/umath/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/umath/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/umath/internal/logging"
	"github.com/GriffinCanCode/umath/internal/types"
)

var (
	// ErrInvalidToolID is returned for tool ids without a service prefix
	ErrInvalidToolID = errors.New("invalid tool ID format")
	// ErrServiceNotFound is returned when no provider owns the tool prefix
	ErrServiceNotFound = errors.New("service not found")
)

// Registry manages service discovery and execution
type Registry struct {
	services sync.Map

	metrics *monitoring.Metrics
	tracer  *tracing.Tracer
	logger  *logging.Logger
}

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// Executor runs a tool by id; Registry and single providers satisfy it
type Executor interface {
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// NewRegistry creates a new service registry
func NewRegistry() *Registry {
	return &Registry{logger: logging.NewNop()}
}

// WithMetrics records tool calls on m
func (r *Registry) WithMetrics(m *monitoring.Metrics) *Registry {
	r.metrics = m
	return r
}

// WithTracer opens a span per tool execution
func (r *Registry) WithTracer(t *tracing.Tracer) *Registry {
	r.tracer = t
	return r
}

// WithLogger logs executions at debug level
func (r *Registry) WithLogger(l *logging.Logger) *Registry {
	if l != nil {
		r.logger = l.Named("registry")
	}
	return r
}

// Register adds a service provider
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}

	if _, loaded := r.services.LoadOrStore(def.ID, provider); loaded {
		return fmt.Errorf("service already registered: %s", def.ID)
	}
	r.logger.Debug("Registered service",
		zap.String("service", def.ID),
		zap.Int("tools", len(def.Tools)),
	)
	return nil
}

// Unregister removes a service provider
func (r *Registry) Unregister(serviceID string) {
	r.services.Delete(serviceID)
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	val, ok := r.services.Load(serviceID)
	if !ok {
		return nil, false
	}
	return val.(Provider), true
}

// List returns all registered services ordered by ID
func (r *Registry) List(category *types.Category) []types.Service {
	services := []types.Service{}
	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
		return true
	})
	sort.Slice(services, func(i, j int) bool {
		return services[i].ID < services[j].ID
	})
	return services
}

// Discover finds relevant services for a free-text query
func (r *Registry) Discover(query string, limit int) []types.Service {
	type scoredService struct {
		service types.Service
		score   float64
	}

	queryLower := strings.ToLower(query)
	var results []scoredService

	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		if score := r.calculateRelevance(queryLower, def); score > 0 {
			results = append(results, scoredService{service: def, score: score})
		}
		return true
	})

	sort.Slice(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].service.ID < results[j].service.ID
		}
		return results[i].score > results[j].score
	})

	if limit <= 0 {
		limit = len(results)
	}
	output := make([]types.Service, 0, limit)
	for i := 0; i < len(results) && i < limit; i++ {
		output = append(output, results[i].service)
	}

	return output
}

// Execute runs a service tool. Tool IDs take the form <service>.<tool>.
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	serviceID, _, ok := strings.Cut(toolID, ".")
	if !ok || serviceID == "" {
		return failure(ErrInvalidToolID.Error()), fmt.Errorf("%w: %s", ErrInvalidToolID, toolID)
	}

	provider, found := r.Get(serviceID)
	if !found {
		err := fmt.Errorf("%w: %s", ErrServiceNotFound, serviceID)
		return failure(err.Error()), err
	}

	var span *tracing.Span
	if r.tracer != nil {
		span, ctx = r.tracer.StartSpan(ctx, toolID)
		span.SetTag("service", serviceID)
	}
	var timer *monitoring.Timer
	if r.metrics != nil {
		timer = monitoring.NewTimer(r.metrics, serviceID, toolID)
	}

	result, err := provider.Execute(ctx, toolID, params, appCtx)

	status, kind := outcome(result, err)
	fields := []zap.Field{
		zap.String("tool", toolID),
		zap.String("status", status),
	}
	if appCtx != nil && appCtx.RequestID != nil {
		fields = append(fields, zap.String("request_id", *appCtx.RequestID))
	}

	if timer != nil {
		fields = append(fields, zap.Duration("duration", timer.Stop(status)))
		if status != statusSuccess {
			r.metrics.RecordToolError(serviceID, toolID, kind)
		}
	}
	if span != nil {
		if err != nil {
			span.SetError(err)
		}
		span.SetTag("status", status)
		span.Finish()
		r.tracer.Submit(span)
	}

	if err != nil {
		r.logger.Debug("Tool execution failed", append(fields, zap.Error(err))...)
	} else {
		if kind != "" {
			fields = append(fields, zap.String("kind", kind))
		}
		r.logger.Debug("Tool executed", fields...)
	}

	return result, err
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	var total, totalTools int
	categories := make(map[string]int)

	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		total++
		totalTools += len(def.Tools)
		categories[string(def.Category)]++
		return true
	})

	return map[string]interface{}{
		"total_services": total,
		"total_tools":    totalTools,
		"categories":     categories,
	}
}

const (
	statusSuccess = "success"
	statusFailure = "failure"
	statusError   = "error"
)

// outcome classifies an execution for metrics: success, failure (a failed
// result) or error (a Go error from the provider)
func outcome(result *types.Result, err error) (status, kind string) {
	switch {
	case err != nil:
		return statusError, "provider_error"
	case result == nil:
		return statusError, "nil_result"
	case !result.Success:
		k, _ := result.Data["kind"].(string)
		if k == "" {
			k = "unknown"
		}
		return statusFailure, k
	default:
		return statusSuccess, ""
	}
}

func (r *Registry) calculateRelevance(query string, service types.Service) float64 {
	score := 0.0

	// Check service name and ID
	if strings.Contains(query, service.ID) || strings.Contains(query, strings.ToLower(service.Name)) {
		score += 10.0
	}

	// Check description words
	for _, word := range strings.Fields(strings.ToLower(service.Description)) {
		word = strings.Trim(word, "(),.")
		if len(word) > 3 && strings.Contains(query, word) {
			score += 5.0
		}
	}

	// Check capabilities
	for _, cap := range service.Capabilities {
		capClean := strings.ReplaceAll(strings.ToLower(cap), "_", " ")
		if strings.Contains(query, capClean) {
			score += 3.0
		}
	}

	// Check tool names
	for _, tool := range service.Tools {
		if strings.Contains(query, strings.ToLower(tool.Name)) {
			score += 4.0
		}
	}

	// Check category
	if strings.Contains(query, string(service.Category)) {
		score += 2.0
	}

	return score
}

func failure(msg string) *types.Result {
	return &types.Result{
		Success: false,
		Error:   &msg,
	}
}
