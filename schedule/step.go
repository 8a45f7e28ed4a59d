// SPDX-License-Identifier: MIT

package schedule

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/katalvlaran/fieldsim/agents"
	"github.com/katalvlaran/fieldsim/space"
)

// Step applies its batches to the agents of every location key of one level.
// It is immutable after NewStep and may be performed concurrently with
// distinct Envs.
type Step struct {
	batches    []Actions
	number     int
	shuffle    bool
	byAgent    bool
	byLocation bool
	level      int
	workers    int
	logger     *slog.Logger
}

// StepOption configures a Step.
type StepOption func(*Step)

// WithRepeat runs the Step n times per Perform. 0 makes it a no-op.
// Panics if n < 0.
func WithRepeat(n int) StepOption {
	if n < 0 {
		panic("schedule: WithRepeat(n<0)")
	}
	return func(s *Step) { s.number = n }
}

// WithShuffle reorders the batches once per repetition.
func WithShuffle() StepOption {
	return func(s *Step) { s.shuffle = true }
}

// WithParallelByAgent fans the agents of each (location, batch) across workers.
func WithParallelByAgent() StepOption {
	return func(s *Step) { s.byAgent = true }
}

// WithParallelByLocation fans location keys across workers.
func WithParallelByLocation() StepOption {
	return func(s *Step) { s.byLocation = true }
}

// WithLevel selects the space level whose keys partition the agents.
// Panics if level < 0.
func WithLevel(level int) StepOption {
	if level < 0 {
		panic("schedule: WithLevel(level<0)")
	}
	return func(s *Step) { s.level = level }
}

// WithWorkers caps the fan-out at n chunks. Panics if n < 1.
func WithWorkers(n int) StepOption {
	if n < 1 {
		panic("schedule: WithWorkers(n<1)")
	}
	return func(s *Step) { s.workers = n }
}

// WithLogger routes step logs to l. Panics on nil.
func WithLogger(l *slog.Logger) StepOption {
	if l == nil {
		panic("schedule: WithLogger(nil)")
	}
	return func(s *Step) { s.logger = l }
}

// NewStep validates batches and options.
//
// Validation (in order):
//  1. both parallel modes set (ErrConflictingParallel);
//  2. two batches for one kind (ErrDuplicateBatch);
//  3. a parallel mode with a non-self action (ErrUnsafeParallel).
func NewStep(batches []Actions, opts ...StepOption) (*Step, error) {
	s := &Step{
		number:  1,
		workers: runtime.NumCPU(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.byAgent && s.byLocation {
		return nil, ErrConflictingParallel
	}

	seen := make(map[agents.Kind]bool, len(batches))
	for _, b := range batches {
		if seen[b.Kind] {
			return nil, fmt.Errorf("%w: kind %d", ErrDuplicateBatch, b.Kind)
		}
		seen[b.Kind] = true
		if !s.Parallel() {
			continue
		}
		for _, a := range b.List {
			if a.Scope != ScopeSelf {
				return nil, fmt.Errorf("%w: %s (%s scope) for kind %d", ErrUnsafeParallel, a.Op, a.Scope, b.Kind)
			}
		}
	}

	s.batches = make([]Actions, len(batches))
	copy(s.batches, batches)
	return s, nil
}

// Number returns the repetition count.
func (s *Step) Number() int { return s.number }

// Level returns the partitioning level.
func (s *Step) Level() int { return s.level }

// Shuffle reports whether batches are reordered per repetition.
func (s *Step) Shuffle() bool { return s.shuffle }

// ParallelByAgent reports the by-agent fan-out mode.
func (s *Step) ParallelByAgent() bool { return s.byAgent }

// ParallelByLocation reports the by-location fan-out mode.
func (s *Step) ParallelByLocation() bool { return s.byLocation }

// Parallel reports whether any fan-out mode is set.
func (s *Step) Parallel() bool { return s.byAgent || s.byLocation }

// Batches returns a copy of the configured batches.
func (s *Step) Batches() []Actions {
	out := make([]Actions, len(s.batches))
	copy(out, s.batches)
	return out
}

// Perform runs the Step Number() times and returns every created agent.
//
// Per repetition:
//  1. batch order is shuffled when WithShuffle is set;
//  2. storage is partitioned at Level();
//  3. for each location key in catalogue order, for each batch, the kind's
//     agents are snapshotted, always shuffled, and each still-alive agent
//     runs the batch's Actions.
func (s *Step) Perform(env *Env) ([]agents.Agent, error) {
	if !env.valid() {
		return nil, ErrNilEnv
	}
	keys, err := env.Space.Keys(s.level)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	order := s.Batches()
	var out []agents.Agent
	for rep := 0; rep < s.number; rep++ {
		if s.shuffle {
			env.Rand.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		}
		part := env.Storage.Partition(s.level)

		var created []agents.Agent
		if s.byLocation {
			created, err = s.fanOut(env, len(keys), func(wenv *Env, lo, hi int) ([]agents.Agent, error) {
				return s.locations(wenv, keys[lo:hi], part, order)
			})
		} else {
			created, err = s.locations(env, keys, part, order)
		}
		if err != nil {
			return nil, fmt.Errorf("repetition %d: %w", rep, err)
		}
		out = append(out, created...)
	}

	s.logger.Debug("step performed",
		"level", s.level,
		"repeat", s.number,
		"created", len(out),
		"elapsed", time.Since(start))
	return out, nil
}

// locations runs every batch at every key of keys.
func (s *Step) locations(env *Env, keys []space.Location, part agents.Partition, order []Actions) ([]agents.Agent, error) {
	var out []agents.Agent
	for _, key := range keys {
		bin := part[key]
		if bin == nil {
			continue
		}
		for _, b := range order {
			created, err := s.batch(env, bin[b.Kind], b)
			if err != nil {
				return nil, fmt.Errorf("location %s: %w", key, err)
			}
			out = append(out, created...)
		}
	}
	return out, nil
}

// batch shuffles a private copy of list and runs b on each live agent.
func (s *Step) batch(env *Env, list []agents.Agent, b Actions) ([]agents.Agent, error) {
	if len(list) == 0 {
		return nil, nil
	}
	snapshot := make([]agents.Agent, len(list))
	copy(snapshot, list)
	env.Rand.Shuffle(len(snapshot), func(i, j int) { snapshot[i], snapshot[j] = snapshot[j], snapshot[i] })

	run := func(wenv *Env, lo, hi int) ([]agents.Agent, error) {
		var out []agents.Agent
		for _, a := range snapshot[lo:hi] {
			if !a.Alive() {
				continue
			}
			created, err := b.Perform(a, wenv)
			if err != nil {
				return nil, err
			}
			out = append(out, created...)
		}
		return out, nil
	}
	if s.byAgent {
		return s.fanOut(env, len(snapshot), run)
	}
	return run(env, 0, len(snapshot))
}

// fanOut splits 0..n into at most s.workers contiguous chunks and runs work
// on each in its own goroutine with its own Rand stream. Results are gathered
// in chunk order; the error of the lowest failing chunk wins.
func (s *Step) fanOut(env *Env, n int, work func(env *Env, lo, hi int) ([]agents.Agent, error)) ([]agents.Agent, error) {
	chunks := s.workers
	if chunks > n {
		chunks = n
	}
	if chunks <= 1 {
		return work(env, 0, n)
	}

	rngs := streams(env.Rand, chunks)
	results := make([][]agents.Agent, chunks)
	errs := make([]error, chunks)

	var wg sync.WaitGroup
	wg.Add(chunks)
	for c := 0; c < chunks; c++ {
		go func(c int) {
			defer wg.Done()
			lo, hi := c*n/chunks, (c+1)*n/chunks
			results[c], errs[c] = work(env.fork(rngs[c]), lo, hi)
		}(c)
	}
	wg.Wait()

	var out []agents.Agent
	for c := 0; c < chunks; c++ {
		if errs[c] != nil {
			return nil, errs[c]
		}
		out = append(out, results[c]...)
	}
	return out, nil
}
