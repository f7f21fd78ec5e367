package common

import (
	"errors"
	"fmt"
	gomath "math"
	"strconv"

	"github.com/GriffinCanCode/umath/internal/types"
	"github.com/GriffinCanCode/umath/pkg/umath"
)

// MathOps provides common math helpers
type MathOps struct{}

// Error kinds reported in failed results
const (
	KindInvalidArgument = "invalid_argument"
	KindDivisionByZero  = "division_by_zero"
	KindInvalidParams   = "invalid_params"
)

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{
		Success: false,
		Data:    map[string]interface{}{"kind": KindInvalidParams},
		Error:   &msg,
	}, nil
}

// FailureFromError creates a failed result tagged with the catalog error kind
func FailureFromError(err error) (*types.Result, error) {
	msg := err.Error()
	return &types.Result{
		Success: false,
		Data:    map[string]interface{}{"kind": ErrorKind(err)},
		Error:   &msg,
	}, nil
}

// ErrorKind classifies a catalog error
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, umath.ErrDivisionByZero):
		return KindDivisionByZero
	case errors.Is(err, umath.ErrInvalidArgument):
		return KindInvalidArgument
	default:
		return KindInvalidParams
	}
}

// Number wraps a scalar result
func Number(v float64) (*types.Result, error) {
	return Success(map[string]interface{}{"result": Encode(v)})
}

// NumberOrError wraps the (value, error) pair returned by catalog functions
func NumberOrError(v float64, err error) (*types.Result, error) {
	if err != nil {
		return FailureFromError(err)
	}
	return Number(v)
}

// Encode keeps finite values as numbers and renders NaN and ±Inf as strings,
// since JSON has no literal for them.
func Encode(v float64) interface{} {
	if gomath.IsNaN(v) || gomath.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return v
}

// GetNumber extracts float64 from params with validation
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}
	return toFloat(val)
}

// GetNumbers extracts array of numbers with type coercion
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	switch arr := params[key].(type) {
	case []float64:
		return arr, true
	case []interface{}:
		numbers := make([]float64, 0, len(arr))
		for _, v := range arr {
			num, ok := toFloat(v)
			if !ok {
				return nil, false
			}
			numbers = append(numbers, num)
		}
		return numbers, true
	default:
		return nil, false
	}
}

// GetInt extracts an integral number from params
func GetInt(params map[string]interface{}, key string) (int, bool) {
	n, ok := GetNumber(params, key)
	if !ok || n != gomath.Trunc(n) || n < gomath.MinInt || n >= gomath.MaxInt {
		return 0, false
	}
	return int(n), true
}

// GetString extracts string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}

// RequireNumbers extracts several required numeric params in order
func RequireNumbers(params map[string]interface{}, keys ...string) ([]float64, error) {
	values := make([]float64, len(keys))
	for i, key := range keys {
		v, ok := GetNumber(params, key)
		if !ok {
			return nil, fmt.Errorf("%s parameter required", key)
		}
		values[i] = v
	}
	return values, nil
}

// RequireInt extracts a required integer param
func RequireInt(params map[string]interface{}, key string) (int, error) {
	n, ok := GetInt(params, key)
	if !ok {
		return 0, fmt.Errorf("%s parameter required (integer)", key)
	}
	return n, nil
}

func toFloat(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
