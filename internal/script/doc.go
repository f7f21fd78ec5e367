// Package script runs batches of catalog tool calls described in a file.
//
// A script is a list of calls, each naming a tool id, an optional label and
// the tool's params:
//
//	calls:
//	  - tool: umath.areaOfSemicircle
//	    label: Area of semicircle with radius 4
//	    params: {radius: 4}
//
// YAML (.yaml, .yml), TOML (.toml) and JSON (.json) are accepted, optionally
// compressed with gzip or zstd (detected from content). Files that are not
// UTF-8, such as UTF-16 exports, are transcoded first. Calls run in order and
// a failing call never stops the ones after it.
package script
