// SPDX-License-Identifier: MIT

// Package census exports per-tick population tables to SQLite.
//
// Two tables are written for every recorded tick:
//
//	census(run, tick, location, kind, count)   one row per occupied location and kind
//	agents(run, tick, id, kind, location, age, mass, genotype)
//
// The agents table is only filled when WithIndividuals is set, and only for
// agents implementing Individual.
package census

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/fieldsim/agents"
	"github.com/katalvlaran/fieldsim/space"
)

// Individual is an agent with exportable traits.
type Individual interface {
	agents.Agent
	ID() uuid.UUID
	Age() int
	Mass() float64
	Genome() string
}

// Count is one census row.
type Count struct {
	Run      string `db:"run"`
	Tick     int    `db:"tick"`
	Location string `db:"location"`
	Kind     string `db:"kind"`
	Count    int    `db:"count"`
}

// Total is the population of one kind at one tick.
type Total struct {
	Tick  int    `db:"tick"`
	Kind  string `db:"kind"`
	Count int    `db:"count"`
}

// Row is one agents-table row.
type Row struct {
	Run      string  `db:"run"`
	Tick     int     `db:"tick"`
	ID       string  `db:"id"`
	Kind     string  `db:"kind"`
	Location string  `db:"location"`
	Age      int     `db:"age"`
	Mass     float64 `db:"mass"`
	Genotype string  `db:"genotype"`
}

// SQLite records census tables into a SQLite database.
type SQLite struct {
	db          *sqlx.DB
	run         string
	level       int
	individuals bool
	names       func(agents.Kind) string
}

// Option configures a SQLite recorder.
type Option func(*SQLite)

// WithRegistry labels kinds with their registered names instead of numbers.
func WithRegistry(reg *agents.Registry) Option {
	return func(s *SQLite) { s.names = reg.Name }
}

// WithLevel groups census counts by the location prefix of level.
// Panics if level < 0.
func WithLevel(level int) Option {
	if level < 0 {
		panic("census: WithLevel(level<0)")
	}
	return func(s *SQLite) { s.level = level }
}

// WithIndividuals also writes one agents row per Individual per tick.
func WithIndividuals() Option {
	return func(s *SQLite) { s.individuals = true }
}

// WithRun tags rows with run instead of a fresh random id.
func WithRun(run string) Option {
	return func(s *SQLite) { s.run = run }
}

// Open opens or creates the database at path and migrates it.
func Open(path string, opts ...Option) (*SQLite, error) {
	db, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("census: open %s: %w", path, err)
	}

	s := &SQLite{
		db:    db,
		run:   uuid.NewString(),
		names: func(k agents.Kind) string { return fmt.Sprintf("kind(%d)", k) },
	}
	for _, opt := range opts {
		opt(s)
	}
	if err = s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("census: migrate %s: %w", path, err)
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS census (
		run TEXT NOT NULL,
		tick INTEGER NOT NULL,
		location TEXT NOT NULL,
		kind TEXT NOT NULL,
		count INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS agents (
		run TEXT NOT NULL,
		tick INTEGER NOT NULL,
		id TEXT NOT NULL,
		kind TEXT NOT NULL,
		location TEXT NOT NULL,
		age INTEGER NOT NULL,
		mass REAL NOT NULL,
		genotype TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_census_run_tick ON census(run, tick);
	CREATE INDEX IF NOT EXISTS idx_agents_run_tick ON agents(run, tick);
	`)
	return err
}

// Run returns the run id rows are tagged with.
func (s *SQLite) Run() string { return s.run }

// Close closes the database.
func (s *SQLite) Close() error { return s.db.Close() }

// Record writes the census of st at tick in one transaction, one prepared
// insert per row.
func (s *SQLite) Record(ctx context.Context, tick int, st agents.Storage) error {
	counts := s.counts(tick, st)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if len(counts) > 0 {
		stmt, err := tx.PrepareNamedContext(ctx, `INSERT INTO census (run, tick, location, kind, count)
			VALUES (:run, :tick, :location, :kind, :count)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, c := range counts {
			if _, err = stmt.ExecContext(ctx, c); err != nil {
				return fmt.Errorf("census: tick %d at %s: %w", tick, c.Location, err)
			}
		}
	}

	if s.individuals {
		stmt, err := tx.PrepareNamedContext(ctx, `INSERT INTO agents
			(run, tick, id, kind, location, age, mass, genotype)
			VALUES (:run, :tick, :id, :kind, :location, :age, :mass, :genotype)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, a := range st.All() {
			ind, ok := a.(Individual)
			if !ok {
				continue
			}
			row := Row{
				Run:      s.run,
				Tick:     tick,
				ID:       ind.ID().String(),
				Kind:     s.names(ind.Kind()),
				Location: ind.Location().String(),
				Age:      ind.Age(),
				Mass:     ind.Mass(),
				Genotype: ind.Genome(),
			}
			if _, err = stmt.ExecContext(ctx, row); err != nil {
				return fmt.Errorf("census: tick %d agent %s: %w", tick, row.ID, err)
			}
		}
	}

	return tx.Commit()
}

// counts groups st by location prefix and kind, sorted for stable output.
func (s *SQLite) counts(tick int, st agents.Storage) []Count {
	type key struct {
		loc  space.Location
		kind agents.Kind
	}
	tally := make(map[key]int)
	for _, a := range st.All() {
		loc := a.Location()
		if loc.Depth() > s.level+1 {
			loc = loc.Prefix(s.level + 1)
		}
		tally[key{loc, a.Kind()}]++
	}

	out := make([]Count, 0, len(tally))
	for k, n := range tally {
		out = append(out, Count{
			Run:      s.run,
			Tick:     tick,
			Location: k.loc.String(),
			Kind:     s.names(k.kind),
			Count:    n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Location != out[j].Location {
			return out[i].Location < out[j].Location
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}

// Counts returns the census rows of this run at tick.
func (s *SQLite) Counts(ctx context.Context, tick int) ([]Count, error) {
	var out []Count
	err := s.db.SelectContext(ctx, &out, `SELECT run, tick, location, kind, count FROM census
		WHERE run = ? AND tick = ? ORDER BY location, kind`, s.run, tick)
	return out, err
}

// Totals returns per-tick, per-kind population sums of this run.
func (s *SQLite) Totals(ctx context.Context) ([]Total, error) {
	var out []Total
	err := s.db.SelectContext(ctx, &out, `SELECT tick, kind, SUM(count) AS count FROM census
		WHERE run = ? GROUP BY tick, kind ORDER BY tick, kind`, s.run)
	return out, err
}

// Individuals returns the agents rows of this run at tick.
func (s *SQLite) Individuals(ctx context.Context, tick int) ([]Row, error) {
	var out []Row
	err := s.db.SelectContext(ctx, &out, `SELECT run, tick, id, kind, location, age, mass, genotype
		FROM agents WHERE run = ? AND tick = ? ORDER BY id`, s.run, tick)
	return out, err
}
