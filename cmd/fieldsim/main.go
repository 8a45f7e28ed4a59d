// SPDX-License-Identifier: MIT

// Command fieldsim runs an insect population scenario over a nested field of
// plants and leaves and exports a per-tick census.
//
// Usage:
//
//	fieldsim -config scenario.yaml [-ticks N] [-seed S] [-v]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/fieldsim/agents"
	"github.com/katalvlaran/fieldsim/census"
	"github.com/katalvlaran/fieldsim/config"
	"github.com/katalvlaran/fieldsim/engine"
	"github.com/katalvlaran/fieldsim/gridgraph"
	"github.com/katalvlaran/fieldsim/insects"
	"github.com/katalvlaran/fieldsim/topology"
)

func main() {
	var (
		path    = flag.String("config", "scenario.yaml", "scenario file")
		ticks   = flag.Int("ticks", -1, "override the scenario tick count")
		seed    = flag.Int64("seed", 0, "override the scenario seed")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, *path, *ticks, *seed); err != nil {
		slog.Error("fieldsim failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, path string, ticks int, seed int64) error {
	s, err := config.Load(path)
	if err != nil {
		return err
	}
	if ticks >= 0 {
		s.Ticks = ticks
	}
	if seed != 0 {
		s.Seed = seed
	}

	// ── Space ─────────────────────────────────────────────────────────
	store, closeStore, err := s.OpenStore()
	if err != nil {
		return err
	}
	defer closeStore()

	start := time.Now()
	sp, grids, err := s.BuildSpace(ctx, store, topology.WithLogger(logger))
	if err != nil {
		return err
	}
	for i, g := range grids {
		slog.Info("level ready", "level", i, "grid", g.Spec.Key(),
			"vertices", humanize.Comma(int64(g.Order())), "components", g.Components())
	}
	slog.Info("space ready", "locations", humanize.Comma(int64(locations(grids))), "elapsed", time.Since(start))

	// ── Model ─────────────────────────────────────────────────────────
	reg, err := s.Registry()
	if err != nil {
		return err
	}
	habitat := s.BuildHabitat(grids[0])
	slog.Info("habitat", "mean_quality", fmt.Sprintf("%.3f", habitat.Mean()),
		"patches", len(habitat.Patches(s.Habitat.Threshold)), "threshold", s.Habitat.Threshold)

	model, err := insects.NewModel(reg, habitat, s.Model)
	if err != nil {
		return err
	}
	sched, err := s.BuildSchedule(reg, logger)
	if err != nil {
		return err
	}

	// ── Engine ────────────────────────────────────────────────────────
	opts := []engine.Option{
		engine.WithSeed(s.Seed),
		engine.WithLogger(logger),
		engine.WithPrototypes(model.Prototypes()),
	}
	var rec *census.SQLite
	if s.Output.SQLite != "" {
		copts := []census.Option{census.WithRegistry(reg), census.WithLevel(s.Output.Level)}
		if s.Output.Individuals {
			copts = append(copts, census.WithIndividuals())
		}
		if rec, err = census.Open(s.Output.SQLite, copts...); err != nil {
			return err
		}
		defer rec.Close()
		opts = append(opts, engine.WithRecorder(rec))
		slog.Info("census", "path", s.Output.SQLite, "run", rec.Run())
	}

	e, err := engine.New(sched, sp, agents.NewMemory(agents.WithSpace(sp)), opts...)
	if err != nil {
		return err
	}
	if err = s.Populate(reg, model, sp, e.Storage(), e.Rand()); err != nil {
		return err
	}
	if rec != nil {
		if err = rec.Record(ctx, 0, e.Storage()); err != nil {
			return err
		}
	}
	e.OnTick = func(st engine.Stats) {
		if st.Alive == 0 {
			slog.Warn("population extinct", "tick", st.Tick)
		}
	}

	if err = e.Run(ctx, s.Ticks); err != nil {
		return err
	}

	if rec != nil {
		totals, err := rec.Totals(ctx)
		if err != nil {
			return err
		}
		slog.Info("census written", "path", s.Output.SQLite, "rows", humanize.Comma(int64(len(totals))))
	}
	for kind, n := range agents.Census(e.Storage()) {
		slog.Info("final population", "kind", reg.Name(kind), "count", humanize.Comma(int64(n)))
	}
	return nil
}

func locations(grids []*gridgraph.Grid) int {
	n := 1
	for _, g := range grids {
		n *= g.Order()
	}
	return n
}
