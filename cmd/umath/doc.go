// Package main is the umath console driver.
//
// Without flags it prints a fixed set of catalog results (semicircle,
// trapezium, parallelogram, hexagon angles). With -script it runs batch
// scripts through the tool provider instead:
//
//	./umath
//	./umath -script scripts/demo.yaml
//	./umath -script 'scripts/**/*.toml' -format json
//	./umath -script scripts/demo.yaml -remote http://localhost:8000
//
// Failures print "Error: <description>" to stderr. -wait keeps the console
// open until a line is read from stdin.
package main
