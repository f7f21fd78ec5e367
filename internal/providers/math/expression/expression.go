package expression

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dop251/goja"

	"github.com/GriffinCanCode/umath/pkg/umath"
)

// ErrEmpty is returned when compiling a blank expression
var ErrEmpty = errors.New("expression is empty")

// Config defines evaluation limits
type Config struct {
	Timeout      time.Duration // Upper bound on a single Run
	MaxCallStack int           // goja call stack limit
}

// DefaultConfig returns sensible limits
func DefaultConfig() Config {
	return Config{
		Timeout:      2 * time.Second,
		MaxCallStack: 1024,
	}
}

// Expression is a compiled function of x
type Expression struct {
	source string
	config Config

	mu sync.Mutex
	vm *goja.Runtime
	fn goja.Callable
}

// Compile parses source as the body of f(x) with the default config
func Compile(source string) (*Expression, error) {
	return CompileWithConfig(source, DefaultConfig())
}

// CompileWithConfig parses source as the body of f(x)
func CompileWithConfig(source string, config Config) (*Expression, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, ErrEmpty
	}

	program, err := goja.Compile("expression", "(function(x) { return ("+source+"); })", true)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", source, err)
	}

	vm := goja.New()
	if config.MaxCallStack > 0 {
		vm.SetMaxCallStackSize(config.MaxCallStack)
	}
	for _, name := range []string{"require", "process", "module", "exports"} {
		if err := vm.Set(name, goja.Undefined()); err != nil {
			return nil, err
		}
	}

	val, err := vm.RunProgram(program)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", source, err)
	}
	fn, ok := goja.AssertFunction(val)
	if !ok {
		return nil, fmt.Errorf("compile %q: not a function", source)
	}

	return &Expression{source: source, config: config, vm: vm, fn: fn}, nil
}

// Source returns the trimmed expression text
func (e *Expression) Source() string {
	return e.source
}

// Eval evaluates the expression at a single point
func (e *Expression) Eval(ctx context.Context, x float64) (float64, error) {
	return e.Run(ctx, func(f umath.Func) float64 {
		return f(x)
	})
}

// abort unwinds body once the script has failed
type abort struct{}

// Run hands body a umath.Func backed by the expression. The first script
// error (exception, timeout or cancellation) unwinds body at the failing
// call and is returned; body never sees a result past that point.
func (e *Expression) Run(ctx context.Context, body func(umath.Func) float64) (result float64, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	done := make(chan struct{})
	var wg sync.WaitGroup

	var timeout <-chan time.Time
	if e.config.Timeout > 0 {
		timer := time.NewTimer(e.config.Timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-timeout:
			e.vm.Interrupt("execution timeout exceeded")
		case <-ctx.Done():
			e.vm.Interrupt("context cancelled")
		case <-done:
		}
	}()
	defer func() {
		close(done)
		wg.Wait()
		e.vm.ClearInterrupt()
	}()

	var runErr error
	f := func(x float64) float64 {
		val, err := e.fn(goja.Undefined(), e.vm.ToValue(x))
		if err != nil {
			runErr = fmt.Errorf("evaluate %q at x=%g: %w", e.source, x, err)
			panic(abort{})
		}
		return val.ToFloat()
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(abort); !ok {
				panic(r)
			}
			result, err = 0, runErr
		}
	}()

	return body(f), nil
}
