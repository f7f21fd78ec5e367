// Package common holds the helpers shared by the math tool groups.
//
// Tool handlers receive loosely typed params decoded from JSON, YAML or TOML.
// The helpers here coerce them to float64 or int and turn catalog results
// into types.Result values:
//   - GetNumber, GetNumbers, GetInt: tolerant param extraction
//   - RequireNumbers, RequireInt: extraction with a descriptive error
//   - NumberOrError: (value, error) to Result, tagging the error kind
//
// Failed results carry Data["kind"]: invalid_argument, division_by_zero or
// invalid_params.
//
// Example Usage:
//
//	vals, err := common.RequireNumbers(params, "a", "b")
//	if err != nil {
//	    return common.Failure(err.Error())
//	}
//	return common.NumberOrError(umath.Divide(vals[0], vals[1]))
package common
