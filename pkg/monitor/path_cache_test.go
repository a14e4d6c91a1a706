package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathCache_ReusesCompiledProgram(t *testing.T) {
	c := newPathCache(4)
	env := map[string]interface{}{"pos": map[string]interface{}{"name": "table"}}

	v1, err := c.compileAndRun("pos.name", env)
	require.NoError(t, err)
	assert.Equal(t, "table", v1)

	_, cached := c.get("pos.name")
	assert.True(t, cached)

	v2, err := c.compileAndRun("pos.name", env)
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
}

func TestPathCache_EvictsOldestBeyondCapacity(t *testing.T) {
	c := newPathCache(2)
	env := map[string]interface{}{"a": 1, "b": 2, "c": 3}

	_, err := c.compileAndRun("a", env)
	require.NoError(t, err)
	_, err = c.compileAndRun("b", env)
	require.NoError(t, err)
	_, err = c.compileAndRun("c", env)
	require.NoError(t, err)

	_, stillCached := c.get("a")
	assert.False(t, stillCached, "oldest entry should be evicted once capacity is exceeded")

	_, cached := c.get("c")
	assert.True(t, cached)
}

func TestPathCache_DefaultsCapacityWhenNonPositive(t *testing.T) {
	c := newPathCache(0)
	assert.Equal(t, 256, c.capacity)
}
