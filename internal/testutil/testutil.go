// Package testutil provides testing utilities and helpers for backend tests.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/GriffinCanCode/umath/internal/types"
)

// MockServiceProvider is a mock implementation of service.Provider for testing.
type MockServiceProvider struct {
	mock.Mock
}

// Definition mocks the Definition method.
func (m *MockServiceProvider) Definition() types.Service {
	args := m.Called()
	return args.Get(0).(types.Service)
}

// Execute mocks the Execute method.
func (m *MockServiceProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	args := m.Called(ctx, toolID, params, appCtx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Result), args.Error(1)
}

// NewMockServiceProvider creates a new mock service provider with default behaviors.
func NewMockServiceProvider(t *testing.T, serviceID string) *MockServiceProvider {
	t.Helper()
	m := new(MockServiceProvider)

	// Default behavior: return a service with a single test tool
	m.On("Definition").Return(CreateTestService(t, serviceID, types.CategoryMath)).Maybe()

	return m
}

// CreateTestService creates a test service definition.
func CreateTestService(t *testing.T, id string, category types.Category) types.Service {
	t.Helper()

	return types.Service{
		ID:           id,
		Name:         "Test Service",
		Description:  "A test service for unit testing",
		Category:     category,
		Capabilities: []string{"test"},
		Tools: []types.Tool{
			{
				ID:          id + ".test",
				Name:        "test",
				Description: "Test tool",
				Parameters:  []types.Parameter{},
				Returns:     "number",
			},
		},
	}
}

// AssertSuccess asserts that a result is successful.
func AssertSuccess(t *testing.T, result *types.Result) {
	t.Helper()
	if result == nil {
		t.Fatal("Result is nil")
	}
	if !result.Success {
		t.Fatalf("Expected success, got error: %v", derefError(result))
	}
}

// AssertError asserts that a result is a failure carrying a message.
func AssertError(t *testing.T, result *types.Result) {
	t.Helper()
	if result == nil {
		t.Fatal("Result is nil")
	}
	if result.Success {
		t.Fatal("Expected error, got success")
	}
	if result.Error == nil {
		t.Fatal("Expected error message, got nil")
	}
}

// AssertErrorKind asserts a failed result tagged with the given kind.
func AssertErrorKind(t *testing.T, result *types.Result, kind string) {
	t.Helper()
	AssertError(t, result)
	if got := result.Data["kind"]; got != kind {
		t.Fatalf("Expected error kind %q, got %v (%s)", kind, got, *result.Error)
	}
}

// AssertDataField asserts that a result data field has the expected value.
func AssertDataField(t *testing.T, result *types.Result, field string, expected interface{}) {
	t.Helper()
	AssertSuccess(t, result)

	if result.Data == nil {
		t.Fatal("Result data is nil")
	}

	actual, ok := result.Data[field]
	if !ok {
		t.Fatalf("Field %s not found in result data", field)
	}

	if actual != expected {
		t.Fatalf("Field %s: expected %v, got %v", field, expected, actual)
	}
}

// AssertResultInDelta asserts a numeric result within delta of expected.
func AssertResultInDelta(t *testing.T, result *types.Result, expected, delta float64) {
	t.Helper()
	AssertSuccess(t, result)
	got, ok := result.Data["result"].(float64)
	if !ok {
		t.Fatalf("Expected numeric result, got %T (%v)", result.Data["result"], result.Data["result"])
	}
	if diff := got - expected; diff < -delta || diff > delta {
		t.Fatalf("Expected %v ± %v, got %v", expected, delta, got)
	}
}

func derefError(result *types.Result) string {
	if result.Error == nil {
		return "<nil>"
	}
	return *result.Error
}
