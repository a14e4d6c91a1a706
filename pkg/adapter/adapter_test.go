package adapter_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcwell-robotics/planeval/pkg/adapter"
)

const sampleGroundTruth = `{
  "task_id": "task-1",
  "description": "put the apple in the cabinet",
  "robots": {"r1": "panda", "R1": null},
  "init_pos": {
    "apple": ["table", "counter"],
    "cabinet": ["kitchen"],
    "R1": ["table"]
  },
  "goal_constraints": [
    [{"type": "asset", "name": "apple", "is_satisfied": true, "status": {"pos.name": "cabinet"}}]
  ],
  "temporal_constraints": []
}`

func TestNormalize_StripsNullRobotEntries(t *testing.T) {
	n, err := adapter.Normalize([]byte(sampleGroundTruth), rand.New(rand.NewSource(1)))

	require.NoError(t, err)
	assert.Contains(t, n.Meta.Agents, "r1")
	assert.NotContains(t, n.Meta.Agents, "R1")
}

func TestNormalize_SkipsRobotPlaceholderAssetEntries(t *testing.T) {
	n, err := adapter.Normalize([]byte(sampleGroundTruth), rand.New(rand.NewSource(1)))

	require.NoError(t, err)
	assert.NotContains(t, n.Meta.Assets, "R1")
}

func TestNormalize_DerivesContainerFlagFromAssetTypeName(t *testing.T) {
	n, err := adapter.Normalize([]byte(sampleGroundTruth), rand.New(rand.NewSource(1)))

	require.NoError(t, err)
	require.Contains(t, n.Meta.Assets, "cabinet")
	require.NotNil(t, n.Meta.Assets["cabinet"].IsContainer)
	assert.True(t, *n.Meta.Assets["cabinet"].IsContainer)

	require.Contains(t, n.Meta.Assets, "apple")
	require.NotNil(t, n.Meta.Assets["apple"].IsContainer)
	assert.False(t, *n.Meta.Assets["apple"].IsContainer)
}

func TestNormalize_SeededRandomSelectionIsDeterministic(t *testing.T) {
	n1, err := adapter.Normalize([]byte(sampleGroundTruth), rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	n2, err := adapter.Normalize([]byte(sampleGroundTruth), rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, n1.Meta.Assets["apple"].Pos, n2.Meta.Assets["apple"].Pos)
}

func TestNormalize_CarriesGoalConstraints(t *testing.T) {
	n, err := adapter.Normalize([]byte(sampleGroundTruth), rand.New(rand.NewSource(1)))

	require.NoError(t, err)
	require.Len(t, n.GoalConstraints, 1)
	require.Len(t, n.GoalConstraints[0], 1)
	assert.Equal(t, "apple", n.GoalConstraints[0][0].Name)
}

func TestNormalize_RejectsMalformedJSON(t *testing.T) {
	_, err := adapter.Normalize([]byte("{not json"), rand.New(rand.NewSource(1)))

	require.Error(t, err)
}

func TestNormalize_RejectsMissingTaskID(t *testing.T) {
	raw := `{"robots": {"r1": "panda"}, "init_pos": {}}`

	_, err := adapter.Normalize([]byte(raw), rand.New(rand.NewSource(1)))

	require.Error(t, err)
}

func TestNormalize_RejectsEmptyRobots(t *testing.T) {
	raw := `{"task_id": "t1", "robots": {}, "init_pos": {}}`

	_, err := adapter.Normalize([]byte(raw), rand.New(rand.NewSource(1)))

	require.Error(t, err)
}
