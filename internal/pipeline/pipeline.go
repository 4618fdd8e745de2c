// Package pipeline wraps every system-mutating step in a
// prompt → decide → (execute | record) unit of work, and keeps the
// append-only audit trail for the run.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/astinowak-wq/LinkZero-sub000/internal/logging"
)

// Command is the opaque mutating payload of one action. The pipeline only
// relies on its boolean-success contract: a nil error means the mutation
// applied, anything else is a failure.
type Command interface {
	Run(ctx context.Context) error
	String() string
}

// Action pairs a human-readable description with its mutating payload.
type Action struct {
	Description string
	Command     Command
}

// Outcome tags each recorded action. These four values are the complete
// domain; nothing else is ever produced.
type Outcome string

const (
	OutcomeExecuted    Outcome = "executed"
	OutcomeSkipped     Outcome = "skipped"
	OutcomeDryAccepted Outcome = "dry-accepted"
	OutcomeFailed      Outcome = "failed"
)

// Confirmer obtains one decision from the operator. Implemented by
// chooser.Chooser; the safe default is the index of "No".
type Confirmer interface {
	Choose(question string, options []string, safeDefault int) (int, error)
}

var yesNo = []string{"Yes", "No"}

const (
	optionYes = 0
	optionNo  = 1
)

// Pipeline drives confirmation and execution for every registered action.
type Pipeline struct {
	confirmer Confirmer
	logger    *slog.Logger
	log       *Log
	dryRun    bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithDryRun puts the pipeline in dry-run mode: confirmed payloads are
// recorded but never invoked.
func WithDryRun(dry bool) Option {
	return func(p *Pipeline) {
		p.dryRun = dry
	}
}

// New creates a pipeline with an empty action log.
func New(confirmer Confirmer, logger *slog.Logger, opts ...Option) *Pipeline {
	if logger == nil {
		logger = logging.NewNop()
	}
	p := &Pipeline{
		confirmer: confirmer,
		logger:    logger,
		log:       &Log{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// DryRun reports the pipeline mode.
func (p *Pipeline) DryRun() bool {
	return p.dryRun
}

// Log returns the audit trail accumulated so far.
func (p *Pipeline) Log() *Log {
	return p.log
}

// Perform prompts for one action and applies it per the run mode,
// appending exactly one record. The returned error is non-nil only for
// run-level cancellation (chooser.ErrCancelled); execution failures are
// recorded, logged at ERROR level, and do not stop the run.
func (p *Pipeline) Perform(ctx context.Context, a Action) (Outcome, error) {
	choice, err := p.confirmer.Choose(a.Description+"?", yesNo, optionNo)
	if err != nil {
		// Cancellation aborts the invocation before any outcome exists.
		return "", err
	}

	if choice != optionYes {
		p.append(a, OutcomeSkipped)
		p.logger.Info("skipped: " + a.Description)
		return OutcomeSkipped, nil
	}

	if p.dryRun {
		// Core safety invariant: an affirmative choice in dry-run mode is
		// recorded but the payload is never invoked.
		p.append(a, OutcomeDryAccepted)
		p.logger.Info("dry-run: would execute: " + a.Command.String())
		return OutcomeDryAccepted, nil
	}

	if err := a.Command.Run(ctx); err != nil {
		p.append(a, OutcomeFailed)
		p.logger.Error("failed: "+a.Description, "err", err)
		return OutcomeFailed, nil
	}

	p.append(a, OutcomeExecuted)
	logging.Success(p.logger, a.Description)
	return OutcomeExecuted, nil
}

func (p *Pipeline) append(a Action, outcome Outcome) {
	p.log.append(Record{
		Description: a.Description,
		Command:     a.Command.String(),
		Outcome:     outcome,
	})
}
