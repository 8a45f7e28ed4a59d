// SPDX-License-Identifier: MIT

package schedule_test

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldsim/agents"
	"github.com/katalvlaran/fieldsim/gridgraph"
	"github.com/katalvlaran/fieldsim/schedule"
	"github.com/katalvlaran/fieldsim/space"
	"github.com/katalvlaran/fieldsim/topology"
)

func TestSchedule_Composition(t *testing.T) {
	sp := field(t)
	m, _ := populate(t, 7)

	breed := step(t, []schedule.Actions{batch(t, critterKind, "reproduce")})
	idle := step(t, []schedule.Actions{batch(t, critterKind)})
	sched := schedule.New(breed, idle)
	assert.Equal(t, 2, sched.Len())

	created, err := sched.Perform(newEnv(sp, m, 3))
	require.NoError(t, err)
	assert.Len(t, created, 7)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6}, parents(created))
	assert.Equal(t, 7, m.Len(), "created agents are returned, not inserted")
}

func TestSchedule_ErrorNamesStep(t *testing.T) {
	sp := field(t)
	m, cs := populate(t, 2)
	cs[1].fail = true

	sched := schedule.New(
		step(t, []schedule.Actions{batch(t, critterKind, "advance_age")}),
		step(t, []schedule.Actions{batch(t, critterKind, "grow")}),
	)
	_, err := sched.Perform(newEnv(sp, m, 1))
	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "step 1:")
}

func TestSchedule_Bind(t *testing.T) {
	sched := schedule.New(
		step(t, []schedule.Actions{batch(t, critterKind, "move", "consume"), batch(t, grazerKind, "advance_age")}),
		step(t, []schedule.Actions{batch(t, grazerKind, "advance_age")}, schedule.WithLevel(1)),
	)
	assert.Equal(t, []agents.Kind{critterKind, grazerKind}, sched.Kinds())

	protos := map[agents.Kind]agents.Agent{critterKind: &critter{}, grazerKind: &grazer{}}
	require.NoError(t, sched.Bind(protos))

	err := sched.Bind(map[agents.Kind]agents.Agent{critterKind: &critter{}})
	require.ErrorIs(t, err, schedule.ErrUnsupportedOperation)

	bad := schedule.New(step(t, []schedule.Actions{batch(t, grazerKind, "advance_age", "reproduce")}))
	err = bad.Bind(protos)
	require.ErrorIs(t, err, schedule.ErrUnsupportedOperation)
	assert.Contains(t, err.Error(), "reproduce")
}

func TestSchedule_Validate(t *testing.T) {
	sp := field(t)
	ok := schedule.New(step(t, nil), step(t, nil, schedule.WithLevel(1)))
	require.NoError(t, ok.Validate(sp))

	deep := schedule.New(step(t, nil), step(t, nil, schedule.WithLevel(2)))
	err := deep.Validate(sp)
	require.ErrorIs(t, err, space.ErrLevelOutOfRange)
	assert.Contains(t, err.Error(), "step 1")
}

func TestNewRand(t *testing.T) {
	assert.Equal(t, schedule.NewRand(0).Int63(), schedule.NewRand(1).Int63())
	assert.NotEqual(t, schedule.NewRand(2).Int63(), schedule.NewRand(3).Int63())
}

// ExampleSchedule_Perform runs one tick that ages two grazers twice.
func ExampleSchedule_Perform() {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	g, _ := gridgraph.New(gridgraph.Square, 2, 2, false, topology.WithLogger(discard))
	sp, _ := space.New(g.Graph)

	store := agents.NewMemory()
	_ = store.Insert(&grazer{loc: space.At(0)}, &grazer{loc: space.At(3)})

	ageing, _ := schedule.NewActions(grazerKind, "advance_age")
	st, _ := schedule.NewStep([]schedule.Actions{ageing}, schedule.WithRepeat(2), schedule.WithLogger(discard))
	created, err := schedule.New(st).Perform(&schedule.Env{Space: sp, Storage: store, Rand: schedule.NewRand(1)})

	fmt.Println(len(created), err)
	// Output:
	// 0 <nil>
}
