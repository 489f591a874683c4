package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/armon/go-metrics"

	"github.com/axelarnetwork/utils/slices"
	"github.com/polypuls3/polypulse/types"
)

// State is the lifecycle of a single resolution
type State int

// resolution states
const (
	Idle State = iota
	Resolving
	Resolved
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Resolving:
		return "resolving"
	case Resolved:
		return "resolved"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Resolver decides which backend answers a read
type Resolver struct {
	logger   log.Logger
	config   Config
	contract Reader
	index    Reader
}

// New returns a new Resolver instance
func New(logger log.Logger, config Config, contract Reader, index Reader) (*Resolver, error) {
	if err := config.ValidateBasic(); err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, err.Error())
	}

	return &Resolver{
		logger:   logger.With("component", "resolver"),
		config:   config,
		contract: contract,
		index:    index,
	}, nil
}

// Config returns the configuration the resolver was created with
func (r Resolver) Config() Config {
	return r.config
}

// Plan returns the ordered backends to try for a read. The first non-empty override replaces the configured mode.
func (r Resolver) Plan(override ...types.DataSource) (Plan, error) {
	mode := r.config.Source
	if len(override) > 0 && override[0] != "" {
		mode = override[0]
	}

	if err := mode.ValidateBasic(); err != nil {
		return Plan{}, errorsmod.Wrap(types.ErrInvalidRequest, err.Error())
	}

	plan := Plan{logger: r.logger, mode: mode}
	switch mode {
	case types.SourceContract:
		plan.steps = []step{{reader: r.contract}}
	case types.SourceIndex:
		plan.steps = []step{{reader: r.index}}
	case types.SourceAuto:
		plan.steps = []step{{reader: r.index, timeout: r.config.Timeout}}
		if r.config.AutoFallback {
			plan.steps = append(plan.steps, step{reader: r.contract})
		}
	}

	return plan, nil
}

type step struct {
	reader  Reader
	timeout time.Duration
}

// Plan is the sequence of backends a read walks through until one answers
type Plan struct {
	logger log.Logger
	mode   types.DataSource
	steps  []step
}

// Mode returns the data source mode the plan was built from
func (p Plan) Mode() types.DataSource {
	return p.mode
}

// Sources returns the backends of the plan in the order they are tried
func (p Plan) Sources() []types.ActiveSource {
	return slices.Map(p.steps, func(s step) types.ActiveSource { return s.reader.Source() })
}

// Outcome is the settled result of a resolution
type Outcome[T any] struct {
	Value    T
	State    State
	Source   types.ActiveSource
	Err      error
	Warnings []string

	plan Plan
}

// Pinned returns the plan to replay this outcome: the backend that answered, or the full plan if none did
func (o Outcome[T]) Pinned() Plan {
	if o.State != Resolved {
		return o.plan
	}

	for _, s := range o.plan.steps {
		if s.reader.Source() == o.Source {
			return Plan{logger: o.plan.logger, mode: o.plan.mode, steps: []step{s}}
		}
	}

	return o.plan
}

// Execute walks the plan and returns the first successful read. Backends are tried sequentially and never retried.
// A step with a timeout that runs out fails with ErrIndexTimeout. If the caller's context ends, resolution stops
// without falling back.
func Execute[T any](ctx context.Context, plan Plan, read func(context.Context, Reader) (T, error)) Outcome[T] {
	outcome := Outcome[T]{State: Resolving, Source: types.ActiveNone, plan: plan}

	if len(plan.steps) == 0 {
		outcome.State = Failed
		outcome.Err = errorsmod.Wrap(types.ErrInvalidRequest, "no data source to read from")
		return outcome
	}

	for i, s := range plan.steps {
		source := s.reader.Source()
		logger := plan.logger.With("mode", string(plan.mode), "source", string(source))

		value, err := runStep(ctx, s, read)
		if err == nil {
			outcome.Value = value
			outcome.State = Resolved
			outcome.Source = source
			outcome.Err = nil

			logger.Debug("resolved read")
			metrics.IncrCounterWithLabels([]string{types.ModuleName, "resolver", "resolved"}, 1, labels(plan.mode, source))
			return outcome
		}

		outcome.Err = err
		metrics.IncrCounterWithLabels([]string{types.ModuleName, "resolver", "failed"}, 1, labels(plan.mode, source))

		if ctx.Err() != nil {
			logger.Debug("read cancelled by caller", "error", err)
			break
		}

		if i < len(plan.steps)-1 {
			next := plan.steps[i+1].reader.Source()
			logger.Info("falling back to next data source", "next", string(next), "error", err)
			outcome.Warnings = append(outcome.Warnings, fmt.Sprintf("%s read failed, falling back to %s: %s", source, next, err))
			metrics.IncrCounterWithLabels([]string{types.ModuleName, "resolver", "fallback"}, 1, labels(plan.mode, source))
			continue
		}

		logger.Error("read failed", "error", err)
	}

	outcome.State = Failed
	return outcome
}

func runStep[T any](ctx context.Context, s step, read func(context.Context, Reader) (T, error)) (T, error) {
	defer metrics.MeasureSinceWithLabels([]string{types.ModuleName, "resolver", "read"}, time.Now(), []metrics.Label{{Name: "source", Value: string(s.reader.Source())}})

	if s.timeout <= 0 {
		return read(ctx, s.reader)
	}

	stepCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type result struct {
		value T
		err   error
	}

	// the read must not outlive the timeout even if the backend ignores its context
	done := make(chan result, 1)
	go func() {
		value, err := read(stepCtx, s.reader)
		done <- result{value, err}
	}()

	var zero T
	select {
	case res := <-done:
		if res.err != nil && ctx.Err() == nil && errors.Is(stepCtx.Err(), context.DeadlineExceeded) {
			return zero, timeoutErr(s)
		}

		return res.value, res.err
	case <-stepCtx.Done():
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}

		return zero, timeoutErr(s)
	}
}

func timeoutErr(s step) error {
	return errorsmod.Wrapf(types.ErrIndexTimeout, "%s did not answer within %s", s.reader.Source(), s.timeout)
}

func labels(mode types.DataSource, source types.ActiveSource) []metrics.Label {
	return []metrics.Label{
		{Name: "mode", Value: string(mode)},
		{Name: "source", Value: string(source)},
	}
}
