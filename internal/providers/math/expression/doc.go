// Package expression compiles single-variable JavaScript expressions into
// numeric functions.
//
// Expressions are evaluated by a goja runtime with host globals removed. Each
// compiled expression owns its runtime, so evaluation is serialized per
// expression.
package expression
