// SPDX-License-Identifier: MIT

// Package config loads YAML scenario files and assembles the simulation
// pieces they describe: the nested space, the kind registry, the schedule,
// the initial population and the cache and output locations.
//
// A scenario looks like:
//
//	seed: 42
//	ticks: 30
//	space:
//	  - {kind: hexagon, rows: 8, cols: 8, torus: true}   # field of plants
//	  - {kind: square, rows: 1, cols: 4}                 # leaves per plant
//	schedule:
//	  - level: 1
//	    agents:
//	      - {kind: larva, actions: [grow, consume, develop, survive, advance_age]}
//	  - shuffle: true
//	    agents:
//	      - {kind: adult, actions: [move, reproduce, survive, advance_age, reset]}
//	population:
//	  - {kind: larva, count: 200, resistance: 0.1}
//
// Unknown keys are rejected. An absent step number means one repetition; an
// explicit zero disables the step.
package config
