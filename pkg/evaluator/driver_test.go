package evaluator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcwell-robotics/planeval/pkg/evaluator"
	"github.com/arcwell-robotics/planeval/pkg/models"
	"github.com/arcwell-robotics/planeval/pkg/monitor"
	"github.com/arcwell-robotics/planeval/pkg/parser"
	"github.com/arcwell-robotics/planeval/pkg/world"
)

func step(agent, command string) parser.RawStep {
	return parser.RawStep{agent: command}
}

// Scenario 1: single-robot pick and place succeeds.
func TestEvaluate_SingleRobotPickAndPlace(t *testing.T) {
	w := world.Build(&world.Metadata{
		Agents: map[string]world.AgentMeta{"R1": {Type: "unitree_h1", Pos: "kitchen"}},
		Assets: map[string]world.AssetMeta{
			"apple": {Pos: "kitchen"},
			"bowl":  {Pos: "kitchen"},
		},
	})
	plan := []parser.RawStep{
		step("R1", "<move, apple>"),
		step("R1", "<reach, apple>"),
		step("R1", "<grasp, apple>"),
		step("R1", "<move, bowl>"),
		step("R1", "<place, bowl>"),
	}
	goal := []monitor.Constraint{
		{{Type: "asset", Name: "apple", IsSatisfied: true, Status: map[string]interface{}{"pos.name": "bowl"}}},
	}

	v := evaluator.New(nil).Evaluate(w, plan, goal, nil)

	require.True(t, v.Success, "ErrorKind=%s FailedStep=%d", v.ErrorKind, v.FailedStep)
	assert.Equal(t, -1, v.FailedStep)
}

// Scenario 2: reach into an isolated container fails with ACTION_NOT_FEASIBLE.
func TestEvaluate_ClosedContainerBlocksReach(t *testing.T) {
	w := world.Build(&world.Metadata{
		Agents: map[string]world.AgentMeta{"R1": {Type: "unitree_h1", Pos: "kitchen"}},
		Assets: map[string]world.AssetMeta{
			"cabinet": {Pos: "kitchen"},
			"apple":   {Pos: "cabinet"},
			"bowl":    {Pos: "kitchen"},
		},
	})
	plan := []parser.RawStep{
		step("R1", "<move, apple>"),
		step("R1", "<reach, apple>"),
	}

	v := evaluator.New(nil).Evaluate(w, plan, nil, nil)

	require.False(t, v.Success)
	assert.Equal(t, models.ErrorActionNotFeasible, v.ErrorKind)
	assert.Equal(t, 1, v.FailedStep)
}

// Scenario 3: opening the cabinet first lets the plan from scenario 2 succeed.
func TestEvaluate_OpenThenReachSucceeds(t *testing.T) {
	w := world.Build(&world.Metadata{
		Agents: map[string]world.AgentMeta{"R1": {Type: "unitree_h1", Pos: "kitchen"}},
		Assets: map[string]world.AssetMeta{
			"cabinet": {Pos: "kitchen"},
			"apple":   {Pos: "cabinet"},
			"bowl":    {Pos: "kitchen"},
		},
	})
	plan := []parser.RawStep{
		step("R1", "<move, cabinet>"),
		step("R1", "<reach, cabinet>"),
		step("R1", "<open, cabinet>"),
		step("R1", "<move, apple>"),
		step("R1", "<reach, apple>"),
		step("R1", "<grasp, apple>"),
		step("R1", "<move, bowl>"),
		step("R1", "<place, bowl>"),
	}
	goal := []monitor.Constraint{
		{
			{Type: "asset", Name: "cabinet", IsSatisfied: false, Status: map[string]interface{}{"container_position.isolated": true}},
			{Type: "asset", Name: "apple", IsSatisfied: true, Status: map[string]interface{}{"pos.name": "bowl"}},
		},
	}

	v := evaluator.New(nil).Evaluate(w, plan, goal, nil)

	require.True(t, v.Success, "ErrorKind=%s FailedStep=%d", v.ErrorKind, v.FailedStep)
	assert.False(t, w.Assets["cabinet"].ContainerPosition.Isolated)
}

// Scenario 4: two robots reaching the same asset in one step are incompatible.
func TestEvaluate_ConcurrentReachSameAssetIsIncompatible(t *testing.T) {
	w := world.Build(&world.Metadata{
		Agents: map[string]world.AgentMeta{
			"R1": {Type: "stompy", Pos: "kitchen"},
			"R2": {Type: "fetch", Pos: "kitchen"},
		},
		Assets: map[string]world.AssetMeta{"apple": {Pos: "kitchen"}},
	})
	plan := []parser.RawStep{
		{"R1": "<reach, apple>", "R2": "<reach, apple>"},
	}

	v := evaluator.New(nil).Evaluate(w, plan, nil, nil)

	require.False(t, v.Success)
	assert.Equal(t, models.ErrorActionNotCompatible, v.ErrorKind)
}

// Scenario 5: handover transfers carrying and position to the receiving agent.
func TestEvaluate_Handover(t *testing.T) {
	w := world.Build(&world.Metadata{
		Agents: map[string]world.AgentMeta{
			"R1": {Type: "fetch", Pos: "R2"},
			"R2": {Type: "unitree_h1", Pos: "kitchen"},
		},
		Assets: map[string]world.AssetMeta{"tray": {Pos: "R1"}},
	})
	w.Agents["R1"].CarriedObjects = []*models.Asset{w.Assets["tray"]}
	w.Assets["tray"].IsGraspedBy = []*models.Agent{w.Agents["R1"]}

	plan := []parser.RawStep{
		step("R1", "<handover, tray, R2>"),
	}

	v := evaluator.New(nil).Evaluate(w, plan, nil, nil)

	require.True(t, v.Success, "ErrorKind=%s FailedStep=%d", v.ErrorKind, v.FailedStep)
	assert.Contains(t, w.Agents["R2"].CarriedObjects, w.Assets["tray"])
	assert.Equal(t, "R2", w.Assets["tray"].Pos.Name)
}

// Scenario 6: a temporal constraint whose first group regresses before the
// second group fires must fail with FAILED_TEMPORAL_CONSTRAINT.
func TestEvaluate_TemporalRegressionFails(t *testing.T) {
	w := world.Build(&world.Metadata{
		Agents: map[string]world.AgentMeta{"R1": {Type: "unitree_h1", Pos: "toaster"}},
		Assets: map[string]world.AssetMeta{
			"bread":   {Pos: "R1"},
			"toaster": {Pos: "kitchen"},
		},
	})
	w.Agents["R1"].CarriedObjects = []*models.Asset{w.Assets["bread"]}
	w.Assets["bread"].IsGraspedBy = []*models.Agent{w.Agents["R1"]}

	temporal := []monitor.TemporalConstraint{
		{
			{{Type: "asset", Name: "bread", IsSatisfied: true, Status: map[string]interface{}{"pos.name": "toaster"}}},
			{{Type: "asset", Name: "toaster", IsSatisfied: true, Status: map[string]interface{}{"is_activated": true}}},
		},
	}

	plan := []parser.RawStep{
		step("R1", "<place, toaster>"), // group 0 (bread at toaster) satisfied
		step("R1", "<reach, bread>"),
		step("R1", "<grasp, bread>"),   // bread removed, group 0 regresses
		step("R1", "<interact, toaster>"),
	}

	v := evaluator.New(nil).Evaluate(w, plan, nil, temporal)

	require.False(t, v.Success)
	assert.Equal(t, models.ErrorFailedTemporalConstraint, v.ErrorKind)
}

func TestEvaluate_UnknownEntityReturnsNotFoundEntity(t *testing.T) {
	w := world.Build(&world.Metadata{
		Agents: map[string]world.AgentMeta{"R1": {Type: "panda", Pos: "kitchen"}},
	})
	plan := []parser.RawStep{step("R1", "<grasp, ghost>")}

	v := evaluator.New(nil).Evaluate(w, plan, nil, nil)

	require.False(t, v.Success)
	assert.Equal(t, models.ErrorNotFoundEntity, v.ErrorKind)
}

func TestEvaluate_UnsatisfiedGoalConstraintFailsAtFinalStep(t *testing.T) {
	w := world.Build(&world.Metadata{
		Agents: map[string]world.AgentMeta{"R1": {Type: "panda", Pos: "kitchen"}},
		Assets: map[string]world.AssetMeta{"apple": {Pos: "kitchen"}},
	})
	plan := []parser.RawStep{step("R1", "<reach, apple>")}
	goal := []monitor.Constraint{
		{{Type: "asset", Name: "apple", IsSatisfied: true, Status: map[string]interface{}{"pos.name": "bowl"}}},
	}

	v := evaluator.New(nil).Evaluate(w, plan, goal, nil)

	require.False(t, v.Success)
	assert.Equal(t, models.ErrorFailedGoalConstraint, v.ErrorKind)
	assert.Equal(t, len(plan)-1, v.FailedStep)
}
