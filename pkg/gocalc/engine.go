// Package gocalc provides the main API for the calculator demonstration.
package gocalc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sivchari/gocalc/internal/calculator"
	"github.com/sivchari/gocalc/internal/config"
	"github.com/sivchari/gocalc/internal/report"
	"go.uber.org/zap"
)

// Step is one line of the demonstration sequence.
type Step struct {
	Label string
	Op    calculator.Operation
	A, B  float64
}

// DemoSteps returns the fixed demonstration sequence.
func DemoSteps() []Step {
	return []Step{
		{Label: calculator.OpAdd.Label(), Op: calculator.OpAdd, A: 5, B: 3},
		{Label: calculator.OpSubtract.Label(), Op: calculator.OpSubtract, A: 10, B: 4},
		{Label: calculator.OpMultiply.Label(), Op: calculator.OpMultiply, A: 2, B: 6},
		{Label: calculator.OpDivide.Label(), Op: calculator.OpDivide, A: 8, B: 2},
		{Label: "Division by zero", Op: calculator.OpDivide, A: 5, B: 0},
	}
}

// Engine runs calculations and reports their results.
type Engine struct {
	config   *config.Config
	calc     *calculator.Calculator
	reporter *report.Generator
	logger   *zap.Logger
	out      io.Writer
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the diagnostics logger. The default discards everything.
func WithLogger(lg *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = lg
	}
}

// WithOutput sets where results are written. The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		e.out = w
	}
}

// NewEngine creates a new engine.
func NewEngine(cfg *config.Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config: cfg,
		calc:   calculator.New(calculator.WithDivisionByZeroMessage(cfg.Messages.DivisionByZero)),
		logger: zap.NewNop(),
		out:    os.Stdout,
	}

	for _, opt := range opts {
		opt(e)
	}

	reporter, err := report.New(cfg, e.out)
	if err != nil {
		return nil, fmt.Errorf("failed to create reporter: %w", err)
	}

	e.reporter = reporter

	return e, nil
}

// Run executes the demonstration sequence. A division by zero is handled by
// printing its message and does not make Run fail.
func (e *Engine) Run(ctx context.Context) error {
	steps := DemoSteps()

	e.logger.Debug("starting demonstration", zap.Int("steps", len(steps)))

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		result := e.evaluate(step.Op, step.A, step.B)
		if err := result.Err; err != nil {
			if !errors.Is(err, calculator.ErrDivisionByZero) {
				return fmt.Errorf("%s failed: %w", step.Label, err)
			}

			e.logger.Debug("handled invalid operation", zap.String("step", step.Label), zap.Error(err))
		}

		if err := e.reporter.Write(report.Entry{Label: step.Label, Result: result}); err != nil {
			return err
		}
	}

	e.logger.Debug("demonstration completed")

	return nil
}

// Evaluate runs a single operation and writes its result. A failed
// operation is written and also returned as the error.
func (e *Engine) Evaluate(ctx context.Context, op calculator.Operation, a, b float64) (calculator.Result, error) {
	if err := ctx.Err(); err != nil {
		return calculator.Result{}, err
	}

	result := e.evaluate(op, a, b)
	if errors.Is(result.Err, calculator.ErrUnknownOperation) {
		return result, result.Err
	}

	if err := e.reporter.Write(report.Entry{Label: op.Label(), Result: result}); err != nil {
		return result, err
	}

	return result, result.Err
}

func (e *Engine) evaluate(op calculator.Operation, a, b float64) calculator.Result {
	result := e.calc.Evaluate(op, a, b)

	e.logger.Debug("evaluated",
		zap.Stringer("op", op),
		zap.Float64("a", a),
		zap.Float64("b", b),
		zap.Float64("value", result.Value),
		zap.Bool("ok", result.Ok()),
	)

	return result
}
