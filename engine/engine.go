// SPDX-License-Identifier: MIT

// Package engine provides the tick loop that drives a Schedule over a Space.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/fieldsim/agents"
	"github.com/katalvlaran/fieldsim/schedule"
	"github.com/katalvlaran/fieldsim/space"
)

// ErrNilDependency indicates New called without a schedule, space or storage.
var ErrNilDependency = errors.New("engine: schedule, space and storage are required")

// Recorder observes the storage after every tick.
type Recorder interface {
	Record(ctx context.Context, tick int, st agents.Storage) error
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(ctx context.Context, tick int, st agents.Storage) error

// Record calls f.
func (f RecorderFunc) Record(ctx context.Context, tick int, st agents.Storage) error {
	return f(ctx, tick, st)
}

// Stats summarizes one tick.
type Stats struct {
	Tick    int
	Created int
	Died    int
	Alive   int
	Elapsed time.Duration
}

// Engine drives the simulation forward one Schedule pass per tick.
type Engine struct {
	Tick int // last completed tick, 0 before the first

	schedule   *schedule.Schedule
	env        schedule.Env
	recorders  []Recorder
	prototypes map[agents.Kind]agents.Agent
	logger     *slog.Logger

	// OnTick, when set, is called after every completed tick.
	OnTick func(Stats)
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed seeds the engine's random stream (0 maps to a fixed default).
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.env.Rand = schedule.NewRand(seed) }
}

// WithRand makes the engine draw from rng. Panics on nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("engine: WithRand(nil)")
	}
	return func(e *Engine) { e.env.Rand = rng }
}

// WithLogger routes engine logs, and the Env logger, to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("engine: WithLogger(nil)")
	}
	return func(e *Engine) { e.logger = l }
}

// WithRecorder appends a Recorder notified after every tick.
func WithRecorder(r Recorder) Option {
	if r == nil {
		panic("engine: WithRecorder(nil)")
	}
	return func(e *Engine) { e.recorders = append(e.recorders, r) }
}

// WithPrototypes binds the schedule against one prototype per agent kind
// during New.
func WithPrototypes(protos map[agents.Kind]agents.Agent) Option {
	return func(e *Engine) { e.prototypes = protos }
}

// New wires an engine and checks the schedule against sp (and the prototypes,
// when given).
func New(sched *schedule.Schedule, sp *space.Space, st agents.Storage, opts ...Option) (*Engine, error) {
	if sched == nil || sp == nil || st == nil {
		return nil, ErrNilDependency
	}
	e := &Engine{
		schedule: sched,
		env:      schedule.Env{Space: sp, Storage: st},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.env.Rand == nil {
		e.env.Rand = schedule.NewRand(0)
	}
	e.env.Logger = e.logger

	if err := sched.Validate(sp); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	if e.prototypes != nil {
		if err := sched.Bind(e.prototypes); err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
	}
	return e, nil
}

// Storage returns the storage the engine mutates.
func (e *Engine) Storage() agents.Storage { return e.env.Storage }

// Space returns the engine's space.
func (e *Engine) Space() *space.Space { return e.env.Space }

// Rand returns the engine's random stream, e.g. to seed an initial population.
func (e *Engine) Rand() *rand.Rand { return e.env.Rand }

// Step advances the simulation by one tick: perform the schedule, insert
// what it created, drop the dead, then notify recorders.
func (e *Engine) Step(ctx context.Context) (Stats, error) {
	start := time.Now()
	tick := e.Tick + 1
	e.env.Tick = tick

	created, err := e.schedule.Perform(&e.env)
	if err != nil {
		return Stats{}, fmt.Errorf("tick %d: %w", tick, err)
	}
	if err = e.env.Storage.Insert(created...); err != nil {
		return Stats{}, fmt.Errorf("tick %d: %w", tick, err)
	}
	died := e.env.Storage.Compact()
	e.Tick = tick

	for _, r := range e.recorders {
		if err = r.Record(ctx, tick, e.env.Storage); err != nil {
			return Stats{}, fmt.Errorf("tick %d: record: %w", tick, err)
		}
	}

	stats := Stats{
		Tick:    tick,
		Created: len(created),
		Died:    died,
		Alive:   e.env.Storage.Len(),
		Elapsed: time.Since(start),
	}
	e.logger.Info("tick",
		"tick", tick,
		"created", humanize.Comma(int64(stats.Created)),
		"died", humanize.Comma(int64(stats.Died)),
		"alive", humanize.Comma(int64(stats.Alive)),
		"elapsed", stats.Elapsed)
	if e.OnTick != nil {
		e.OnTick(stats)
	}
	return stats, nil
}

// Run performs ticks Steps. Cancellation is checked between ticks only; a
// started tick always completes.
func (e *Engine) Run(ctx context.Context, ticks int) error {
	e.logger.Info("simulation started", "tick", e.Tick, "ticks", ticks, "agents", e.env.Storage.Len())
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			e.logger.Info("simulation cancelled", "tick", e.Tick)
			return err
		}
		if _, err := e.Step(ctx); err != nil {
			return err
		}
	}
	e.logger.Info("simulation finished", "tick", e.Tick, "agents", e.env.Storage.Len())
	return nil
}
