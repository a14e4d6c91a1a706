package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcwell-robotics/planeval/pkg/models"
	"github.com/arcwell-robotics/planeval/pkg/parser"
	"github.com/arcwell-robotics/planeval/pkg/world"
)

func buildParserWorld() *world.World {
	return world.Build(&world.Metadata{
		Agents: map[string]world.AgentMeta{
			"r1": {Type: "panda", Pos: "table"},
			"r2": {Type: "fetch", Pos: "table"},
		},
		Assets: map[string]world.AssetMeta{"apple": {Pos: "table"}},
	})
}

func TestParseStep_StringForm(t *testing.T) {
	w := buildParserWorld()
	step := parser.RawStep{"r1": "<grasp, apple>"}

	cmds, kind := parser.ParseStep(w, step)

	require.Equal(t, models.ErrorNone, kind)
	require.Len(t, cmds, 1)
	assert.Equal(t, models.ActionGrasp, cmds[0].Op)
}

func TestParseStep_ArrayForm(t *testing.T) {
	w := buildParserWorld()
	step := parser.RawStep{"r1": []any{"grasp", "apple"}}

	cmds, kind := parser.ParseStep(w, step)

	require.Equal(t, models.ErrorNone, kind)
	require.Len(t, cmds, 1)
	assert.Equal(t, models.ActionGrasp, cmds[0].Op)
}

func TestParseStep_SkipsNullActions(t *testing.T) {
	w := buildParserWorld()
	step := parser.RawStep{"r1": "<grasp, apple>", "r2": nil}

	cmds, kind := parser.ParseStep(w, step)

	require.Equal(t, models.ErrorNone, kind)
	assert.Len(t, cmds, 1)
}

func TestParseStep_FailsFastOnFirstBadEntry(t *testing.T) {
	w := buildParserWorld()
	step := parser.RawStep{"r1": "not-a-command"}

	_, kind := parser.ParseStep(w, step)

	assert.Equal(t, models.ErrorInvalidCommand, kind)
}

func TestParseStep_UnresolvableAgentNameFails(t *testing.T) {
	w := buildParserWorld()
	step := parser.RawStep{"ghost": "<grasp, apple>"}

	_, kind := parser.ParseStep(w, step)

	assert.Equal(t, models.ErrorNotFoundEntity, kind)
}
