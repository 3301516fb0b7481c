// Package runner executes health checks in a fixed order and stops at the
// first failure.
package runner

import (
	"context"

	"go.uber.org/zap"

	"github.com/emperdeon/healthcheck/pkg/check"
)

// Step is one entry of the run order. A disabled step is skipped and counts
// as a pass.
type Step struct {
	Name    string
	Enabled bool
	Check   check.Checker
}

// Outcome is what happened to one step.
type Outcome struct {
	Name    string
	Skipped bool
	Result  check.Result // zero when Skipped
}

// Report lists the outcome of every step reached, in run order.
type Report struct {
	Outcomes []Outcome
}

// Results returns the results of the steps that ran.
func (r Report) Results() []check.Result {
	var results []check.Result
	for _, o := range r.Outcomes {
		if !o.Skipped {
			results = append(results, o.Result)
		}
	}
	return results
}

// Skipped returns the names of the disabled steps.
func (r Report) Skipped() []string {
	var names []string
	for _, o := range r.Outcomes {
		if o.Skipped {
			names = append(names, o.Name)
		}
	}
	return names
}

// OK returns true if no step failed.
func (r Report) OK() bool {
	_, failed := r.Failure()
	return !failed
}

// Failure returns the failed result, if any. Only the last outcome can fail.
func (r Report) Failure() (check.Result, bool) {
	if n := len(r.Outcomes); n > 0 {
		last := r.Outcomes[n-1]
		if !last.Skipped && !last.Result.OK() {
			return last.Result, true
		}
	}
	return check.Result{}, false
}

// Runner executes steps sequentially.
type Runner struct {
	Logger *zap.Logger
}

// Run executes the enabled steps in order and returns as soon as one fails;
// later steps are never started.
func (r *Runner) Run(ctx context.Context, steps []Step) Report {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var report Report
	for _, step := range steps {
		if !step.Enabled {
			log.Debug("check skipped", zap.String("check", step.Name))
			report.Outcomes = append(report.Outcomes, Outcome{Name: step.Name, Skipped: true})
			continue
		}

		log.Debug("running check", zap.String("check", step.Name))
		result := step.Check.Run(ctx)
		report.Outcomes = append(report.Outcomes, Outcome{Name: step.Name, Result: result})

		if !result.OK() {
			log.Debug("check failed",
				zap.String("check", step.Name),
				zap.Strings("details", result.Details),
				zap.Error(result.Err),
			)
			return report
		}
		log.Debug("check passed", zap.String("check", step.Name), zap.Strings("details", result.Details))
	}
	return report
}
