package advanced

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/umath/internal/providers/math/common"
	"github.com/GriffinCanCode/umath/internal/types"
	"github.com/GriffinCanCode/umath/pkg/umath"
)

// MaxFactorialArgument is the largest n whose factorial is finite in float64
const MaxFactorialArgument = 170

// CombinatoricsOps handles counting and integer number theory
type CombinatoricsOps struct {
	*common.MathOps
}

func intPair(first, second string) []types.Parameter {
	return []types.Parameter{
		{Name: first, Type: "integer", Description: "First integer", Required: true},
		{Name: second, Type: "integer", Description: "Second integer", Required: true},
	}
}

// GetTools returns combinatorics tool definitions
func (c *CombinatoricsOps) GetTools() []types.Tool {
	return []types.Tool{
		{ID: "umath.combination", Name: "Combination", Description: "n choose k: n! / (k!(n-k)!)", Parameters: intPair("n", "k"), Returns: "number"},
		{ID: "umath.permutation", Name: "Permutation", Description: "Ordered selections: n! / (n-k)!", Parameters: intPair("n", "k"), Returns: "number"},
		{ID: "umath.gcd", Name: "GCD", Description: "Greatest common divisor", Parameters: intPair("a", "b"), Returns: "integer"},
		{ID: "umath.lcm", Name: "LCM", Description: "Least common multiple", Parameters: intPair("a", "b"), Returns: "integer"},
	}
}

func counts(params map[string]interface{}) (int, int, error) {
	n, k, err := ints(params, "n", "k")
	if err != nil {
		return 0, 0, err
	}
	if n > MaxFactorialArgument {
		return 0, 0, fmt.Errorf("n must not exceed %d", MaxFactorialArgument)
	}
	return n, k, nil
}

func ints(params map[string]interface{}, first, second string) (int, int, error) {
	a, err := common.RequireInt(params, first)
	if err != nil {
		return 0, 0, err
	}
	b, err := common.RequireInt(params, second)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// Combination calculates n choose k
func (c *CombinatoricsOps) Combination(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, k, err := counts(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.NumberOrError(umath.Combination(n, k))
}

// Permutation calculates ordered selections of k from n
func (c *CombinatoricsOps) Permutation(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, k, err := counts(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.NumberOrError(umath.Permutation(n, k))
}

// GCD calculates the greatest common divisor
func (c *CombinatoricsOps) GCD(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, b, err := ints(params, "a", "b")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"result": umath.GCD(a, b)})
}

// LCM calculates the least common multiple
func (c *CombinatoricsOps) LCM(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, b, err := ints(params, "a", "b")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"result": umath.LCM(a, b)})
}
