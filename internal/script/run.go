package script

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/umath/internal/logging"
	"github.com/GriffinCanCode/umath/internal/service"
	"github.com/GriffinCanCode/umath/internal/shared/id"
	"github.com/GriffinCanCode/umath/internal/types"
)

// Outcome is the result of one call
type Outcome struct {
	Index    int           `json:"index"`
	Tool     string        `json:"tool"`
	Label    string        `json:"label"`
	Result   *types.Result `json:"result,omitempty"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// OK reports whether the call produced a successful result
func (o Outcome) OK() bool {
	return o.Error == "" && o.Result != nil && o.Result.Success
}

// Message returns the failure description, or "" on success
func (o Outcome) Message() string {
	switch {
	case o.Error != "":
		return o.Error
	case o.Result == nil:
		return "no result"
	case !o.Result.Success && o.Result.Error != nil:
		return *o.Result.Error
	case !o.Result.Success:
		return "unknown error"
	default:
		return ""
	}
}

// Report collects the outcomes of a run
type Report struct {
	RunID    id.RunID  `json:"run_id"`
	Script   string    `json:"script"`
	Outcomes []Outcome `json:"outcomes"`
	Failed   int       `json:"failed"`
}

// Runner executes scripts against an executor
type Runner struct {
	exec   service.Executor
	logger *logging.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(exec service.Executor, logger *logging.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{exec: exec, logger: logger.Named("script")}
}

// Run executes every call in order. Failures are recorded and the run
// continues; once ctx is done the remaining calls are recorded with its error.
func (r *Runner) Run(ctx context.Context, s *Script) *Report {
	runID := id.NewRunID()
	report := &Report{
		RunID:    runID,
		Script:   s.Name,
		Outcomes: make([]Outcome, 0, len(s.Calls)),
	}

	requestID := runID.String()
	appCtx := &types.Context{RequestID: &requestID, Source: "script"}

	for i, call := range s.Calls {
		outcome := Outcome{Index: i, Tool: call.Tool, Label: call.DisplayLabel()}

		if err := ctx.Err(); err != nil {
			outcome.Error = err.Error()
		} else {
			params := call.Params
			if params == nil {
				params = map[string]interface{}{}
			}
			start := time.Now()
			result, err := r.exec.Execute(ctx, call.Tool, params, appCtx)
			outcome.Duration = time.Since(start)
			outcome.Result = result
			if err != nil {
				outcome.Error = err.Error()
			}
		}

		if !outcome.OK() {
			report.Failed++
			r.logger.Debug("Script call failed",
				zap.String("run_id", requestID),
				zap.Int("index", i),
				zap.String("tool", call.Tool),
				zap.String("error", outcome.Message()),
			)
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	r.logger.Info("Script finished",
		zap.String("run_id", requestID),
		zap.String("script", s.Name),
		zap.Int("calls", len(s.Calls)),
		zap.Int("failed", report.Failed),
	)
	return report
}

// Run executes s against exec without logging
func Run(ctx context.Context, exec service.Executor, s *Script) *Report {
	return NewRunner(exec, nil).Run(ctx, s)
}
