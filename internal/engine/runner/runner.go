// Package runner executes the install plan against the project tree.
package runner

import (
	"context"
	"errors"
	"path/filepath"
	"sync"

	"go.trai.ch/depfix/internal/core/domain"
	"go.trai.ch/depfix/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options configures a single run of the install plan.
type Options struct {
	// Root is the project root the step directories are relative to.
	Root string
	// Parallel runs independent directories of a stage concurrently.
	Parallel bool
}

// Summary reports the outcome of a completed run.
type Summary struct {
	// Steps is the number of steps that were executed.
	Steps int
	// Warnings is the number of non-fatal steps that failed.
	Warnings int
}

// Runner interprets the install plan one invocation at a time.
type Runner struct {
	executor ports.Executor
	logger   ports.Logger
	tracer   ports.Tracer
}

// NewRunner creates a new Runner with the given dependencies.
func NewRunner(executor ports.Executor, logger ports.Logger, tracer ports.Tracer) *Runner {
	return &Runner{
		executor: executor,
		logger:   logger,
		tracer:   tracer,
	}
}

// runState tracks the progress of one Run call.
type runState struct {
	mu      sync.Mutex
	summary Summary
}

func (s *runState) record(warning bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary.Steps++
	if warning {
		s.summary.Warnings++
	}
}

func (s *runState) result() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

// Run executes the plan and returns a summary.
//
// A failing fatal step stops the run with an error wrapping domain.ErrRepairAborted.
// Non-fatal failures are logged and counted as warnings.
func (r *Runner) Run(ctx context.Context, plan []domain.Invocation, opts Options) (Summary, error) {
	names := make([]string, len(plan))
	for i, inv := range plan {
		names[i] = inv.Name
	}
	r.tracer.EmitPlan(ctx, names)

	state := &runState{}

	var err error
	if opts.Parallel {
		err = r.runStages(ctx, plan, opts.Root, state)
	} else {
		err = r.runLane(ctx, plan, opts.Root, state)
	}

	return state.result(), err
}

// runLane executes invocations strictly in order.
func (r *Runner) runLane(ctx context.Context, lane []domain.Invocation, root string, state *runState) error {
	section := ""
	for _, inv := range lane {
		if inv.Section != section {
			section = inv.Section
			r.logger.Info(section + "...")
		}
		if err := r.runStep(ctx, inv, root, state); err != nil {
			return err
		}
	}
	return nil
}

// runStages executes stages in order. Inside a stage every working directory
// forms a sequential lane and lanes run concurrently.
func (r *Runner) runStages(ctx context.Context, plan []domain.Invocation, root string, state *runState) error {
	for _, stage := range Stages(plan) {
		g, gctx := errgroup.WithContext(ctx)
		for _, lane := range Lanes(stage) {
			g.Go(func() error {
				return r.runLane(gctx, lane, root, state)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runStep(ctx context.Context, inv domain.Invocation, root string, state *runState) error {
	ctx, span := r.tracer.Start(ctx, inv.Name)
	defer span.End()

	span.SetAttribute("step.dir", inv.Dir)
	span.SetAttribute("step.fatal", inv.Fatal)
	span.SetAttribute("step.command", inv.CommandLine())
	span.SetAttribute("step.stage", inv.Stage)

	r.logger.Info("> " + inv.CommandLine())

	dir := filepath.Join(root, inv.Dir)
	err := r.executor.Execute(ctx, inv, dir)
	if err == nil {
		state.record(false)
		return nil
	}

	span.RecordError(err)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return zerr.With(zerr.Wrap(ctxErr, "install interrupted"), "step", inv.Name)
	}

	stepErr := zerr.With(zerr.Wrap(err, inv.FailureMessage), "step", inv.Name)
	r.logger.Error(zerr.With(zerr.Wrap(err, "Failed: "+inv.CommandLine()), "step", inv.Name))

	if inv.Fatal {
		state.record(false)
		r.logger.Error(zerr.New(inv.FailureMessage))
		return errors.Join(domain.ErrRepairAborted, stepErr)
	}

	state.record(true)
	if inv.Severity == domain.SeverityError {
		r.logger.Error(zerr.New(inv.FailureMessage))
	} else {
		r.logger.Warn(inv.FailureMessage)
	}

	return nil
}

// Stages splits the plan into consecutive groups sharing the same stage number.
func Stages(plan []domain.Invocation) [][]domain.Invocation {
	var stages [][]domain.Invocation
	for i, inv := range plan {
		if i == 0 || inv.Stage != plan[i-1].Stage {
			stages = append(stages, nil)
		}
		stages[len(stages)-1] = append(stages[len(stages)-1], inv)
	}
	return stages
}

// Lanes groups the invocations of one stage by working directory, keeping the
// order of first appearance and the order inside each lane.
func Lanes(stage []domain.Invocation) [][]domain.Invocation {
	index := make(map[string]int)
	var lanes [][]domain.Invocation
	for _, inv := range stage {
		i, ok := index[inv.Dir]
		if !ok {
			i = len(lanes)
			index[inv.Dir] = i
			lanes = append(lanes, nil)
		}
		lanes[i] = append(lanes[i], inv)
	}
	return lanes
}
