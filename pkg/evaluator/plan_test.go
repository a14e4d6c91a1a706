package evaluator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcwell-robotics/planeval/pkg/evaluator"
)

func TestDecodePlan_WrappedStepShape(t *testing.T) {
	raw := `[{"step": 0, "actions": {"R1": "<move, kitchen>"}}, {"step": 1, "actions": {"R1": "<reach, apple>"}}]`

	steps, err := evaluator.DecodePlan([]byte(raw))

	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "<move, kitchen>", steps[0]["R1"])
}

func TestDecodePlan_BareStepShape(t *testing.T) {
	raw := `[{"R1": "<move, kitchen>"}, {"R1": "<reach, apple>"}]`

	steps, err := evaluator.DecodePlan([]byte(raw))

	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "<move, kitchen>", steps[0]["R1"])
}

func TestDecodePlan_RejectsMalformedJSON(t *testing.T) {
	_, err := evaluator.DecodePlan([]byte("not json"))

	require.Error(t, err)
}
