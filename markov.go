package markov

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/okanara/markov/internal/loader"
	"github.com/okanara/markov/internal/logging"
	"github.com/okanara/markov/internal/report"
	"github.com/okanara/markov/internal/validator"
	"github.com/okanara/markov/pkg/chain"
	"github.com/okanara/markov/pkg/domain"
	"github.com/okanara/markov/pkg/ports"
)

// Hooks are optional observability callbacks fired by the engine. Hosts use
// them to feed metrics or structured logs without coupling the core to a
// metrics library.
type Hooks struct {
	// OnRun fires after a simulation completes, with the finished record.
	OnRun func(ctx context.Context, run *domain.RunRecord)
}

// Engine is the high-level entry point for the markov library. It wraps a
// validated chain model together with the run store and logging the host
// configured.
type Engine struct {
	model       *chain.Model
	name        string
	description string
	start       chain.State
	store       ports.RunStore
	hooks       Hooks
	logger      *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStore sets the store that records simulation runs. Without one, runs
// are not recorded.
func WithStore(store ports.RunStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks Hooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithStart overrides the chain file's start state.
func WithStart(s chain.State) Option {
	return func(e *Engine) {
		e.start = s
	}
}

// New initializes an Engine from a chain definition file.
func New(path string, opts ...Option) (*Engine, error) {
	def, err := loader.Load(path)
	if err != nil {
		return nil, err
	}

	eng := &Engine{
		model:       def.Model,
		name:        def.Name,
		description: def.Description,
		start:       def.Start,
	}
	return eng.apply(opts)
}

// NewFromModel initializes an Engine around a prebuilt model, bypassing the
// file loader. The start state defaults to the first state in sorted order.
func NewFromModel(name string, m *chain.Model, opts ...Option) (*Engine, error) {
	if m == nil {
		return nil, fmt.Errorf("model is required")
	}
	eng := &Engine{
		model: m,
		name:  name,
		start: m.States()[0],
	}
	return eng.apply(opts)
}

func (e *Engine) apply(opts []Option) (*Engine, error) {
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.NewNop()
	}
	if e.name != "" {
		e.logger = e.logger.With("chain", e.name)
	}
	if !e.model.Contains(e.start) {
		return nil, fmt.Errorf("%w: start state %q", chain.ErrUnknownState, e.start)
	}
	return e, nil
}

// Name returns the chain's name.
func (e *Engine) Name() string { return e.name }

// Description returns the chain file's description, if any.
func (e *Engine) Description() string { return e.description }

// Start returns the default start state.
func (e *Engine) Start() chain.State { return e.start }

// Model returns the underlying transition model.
func (e *Engine) Model() *chain.Model { return e.model }

// Simulate draws one sample path of steps transitions from start (the
// engine's default start when empty), seeded with seed. The finished run is
// recorded to the configured store and reported to the OnRun hook.
func (e *Engine) Simulate(ctx context.Context, start chain.State, steps int, seed int64) (chain.Trajectory, *domain.RunRecord, error) {
	if start == "" {
		start = e.start
	}

	path, err := e.model.Simulate(ctx, start, steps, chain.NewSource(seed))
	if err != nil {
		return nil, nil, err
	}

	run := domain.NewRunRecord(e.name, start, steps, seed)
	run.Observe(path)

	e.logger.Info("simulation finished",
		"run_id", run.ID,
		"start", start,
		"steps", steps,
		"seed", seed,
		"final", run.Final,
	)

	if e.store != nil {
		// A failed save should not discard a finished trajectory.
		if err := e.store.Save(ctx, run); err != nil {
			e.logger.Warn("failed to record run", "run_id", run.ID, "error", err)
		}
	}
	if e.hooks.OnRun != nil {
		e.hooks.OnRun(ctx, run)
	}

	return path, run, nil
}

// Propagate evolves an initial distribution forward, returning steps+1
// snapshots. A nil initial distribution means "surely at the start state".
func (e *Engine) Propagate(initial chain.Distribution, steps int) ([]chain.Distribution, error) {
	if initial == nil {
		initial = chain.Point(e.start)
	}
	return e.model.Propagate(initial, steps)
}

// Stationary computes the chain's stationary distribution.
func (e *Engine) Stationary(opts ...chain.StationaryOption) (chain.Distribution, error) {
	return e.model.Stationary(opts...)
}

// Validate runs chain-level diagnostics from the default start state.
func (e *Engine) Validate() *validator.Report {
	return validator.ValidateChain(e.model, e.start)
}

// Describe renders the markdown analysis report for the chain.
func (e *Engine) Describe() string {
	return report.Markdown(report.Input{
		Name:        e.name,
		Description: e.description,
		Start:       e.start,
		Model:       e.model,
	})
}

// Runs lists recorded run IDs. Returns domain.ErrRunNotFound-free empty
// output when no store is configured.
func (e *Engine) Runs(ctx context.Context) ([]string, error) {
	if e.store == nil {
		return nil, nil
	}
	return e.store.List(ctx)
}

// Run loads one recorded run by ID.
func (e *Engine) Run(ctx context.Context, id string) (*domain.RunRecord, error) {
	if e.store == nil {
		return nil, domain.ErrRunNotFound
	}
	return e.store.Load(ctx, id)
}
