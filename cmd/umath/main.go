package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/GriffinCanCode/umath/internal/client"
	"github.com/GriffinCanCode/umath/internal/config"
	"github.com/GriffinCanCode/umath/internal/logging"
	mathProvider "github.com/GriffinCanCode/umath/internal/providers/math"
	"github.com/GriffinCanCode/umath/internal/providers/math/advanced"
	"github.com/GriffinCanCode/umath/internal/script"
	"github.com/GriffinCanCode/umath/internal/service"
	"github.com/GriffinCanCode/umath/pkg/umath"
)

func main() {
	scriptPattern := flag.String("script", "", "Run tool calls from a script file or glob (yaml, toml, json; .gz/.zst ok)")
	format := flag.String("format", "text", "Script output format (text, json)")
	wait := flag.Bool("wait", false, "Wait for a line on stdin before exiting")
	verbose := flag.Bool("v", false, "Log script runs to stderr")
	remote := flag.String("remote", "", "Run scripts against a umath server at this base URL instead of in-process")
	flag.Parse()

	var code int
	if *scriptPattern == "" {
		code = demo(os.Stdout, os.Stderr)
	} else {
		code = runScripts(*scriptPattern, *format, *remote, *verbose)
	}

	if *wait {
		_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	}
	os.Exit(code)
}

// demo prints the fixed catalog results, stopping at the first error
func demo(out, errOut io.Writer) int {
	lines := []struct {
		label string
		value func() (float64, error)
	}{
		{"Area of semicircle with radius 4", func() (float64, error) { return umath.AreaOfSemicircle(4), nil }},
		{"Perimeter of semicircle with radius 4", func() (float64, error) { return umath.PerimeterOfSemicircle(4), nil }},
		{"Area of trapezium with bases 5, 7 and height 4", func() (float64, error) { return umath.AreaOfTrapezium(5, 7, 4), nil }},
		{"Perimeter of trapezium with sides 5, 7, base1 6, base2 8", func() (float64, error) { return umath.PerimeterOfTrapezium(5, 7, 6, 8), nil }},
		{"Area of parallelogram with base 6 and height 3", func() (float64, error) { return umath.AreaOfParallelogram(6, 3), nil }},
		{"Interior angle of a regular hexagon", func() (float64, error) { return umath.InteriorAngleOfPolygon(6) }},
		{"Exterior angle of a regular hexagon", func() (float64, error) { return umath.ExteriorAngleOfPolygon(6) }},
	}

	for _, line := range lines {
		v, err := line.value()
		if err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(out, "%s: %s\n", line.label, script.FormatValue(v))
	}
	return 0
}

func runScripts(pattern, format, remote string, verbose bool) int {
	if format != "text" && format != "json" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", format)
		return 2
	}

	paths, err := script.Glob(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	cfg := config.LoadOrDefault()
	logger := logging.NewNop()
	if verbose {
		l, err := logging.New(logging.Config{
			Level:       cfg.Logging.Level,
			Development: true,
			OutputPaths: []string{"stderr"},
		})
		if err == nil {
			logger = l
		}
	}
	defer func() { _ = logger.Sync() }()

	exec, err := executor(cfg, remote, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := script.NewRunner(exec, logger)
	code := 0
	for _, path := range paths {
		s, err := script.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			code = 1
			continue
		}

		report := runner.Run(ctx, s)
		if report.Failed > 0 {
			code = 1
		}

		if format == "json" {
			err = script.WriteJSON(os.Stdout, report)
		} else {
			err = script.WriteText(os.Stdout, os.Stderr, report)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	return code
}

// executor returns a remote API client, or an in-process registry holding
// the math provider
func executor(cfg *config.Config, remote string, logger *logging.Logger) (service.Executor, error) {
	if remote != "" {
		return client.New(client.DefaultConfig(remote), logger), nil
	}

	opts := advanced.DefaultOptions()
	opts.DerivativeStep = cfg.Calculus.DerivativeStep
	opts.IntegrationSteps = cfg.Calculus.IntegrationSteps
	opts.MaxIntegrationSteps = cfg.Calculus.MaxIntegrationSteps
	opts.Expression.Timeout = cfg.Calculus.ExpressionTimeout

	registry := service.NewRegistry().WithLogger(logger)
	if err := registry.Register(mathProvider.NewProvider(opts)); err != nil {
		return nil, err
	}
	return registry, nil
}
