package parser

import (
	"fmt"

	"github.com/arcwell-robotics/planeval/pkg/models"
	"github.com/arcwell-robotics/planeval/pkg/world"
)

// RawStep is one step's per-agent action map, as decoded from JSON: values
// are either a "<op, arg...>" string, an ["op", "arg", ...] array, or null
// (skipped by ParseStep).
type RawStep map[string]any

// ParseStep parses and resolves every entry of a step into Commands, in map
// iteration order is not guaranteed — callers that need a deterministic
// order should sort by agent name themselves. Returns the first error kind
// encountered, at which point parsing stops (the evaluator fails fast).
func ParseStep(w *world.World, step RawStep) ([]*models.Command, models.ErrorKind) {
	var cmds []*models.Command
	for agentName, raw := range step {
		if raw == nil {
			continue
		}

		var op string
		var args []string
		var err error
		var rawStr string

		switch v := raw.(type) {
		case string:
			rawStr = v
			op, args, err = Split(v)
		case []string:
			rawStr = fmt.Sprintf("%v", v)
			op, args, err = FromArray(v)
		case []any:
			strs := make([]string, len(v))
			for i, x := range v {
				strs[i] = fmt.Sprintf("%v", x)
			}
			rawStr = fmt.Sprintf("%v", strs)
			op, args, err = FromArray(strs)
		default:
			err = ErrInvalidSyntax
		}

		if err != nil {
			return nil, models.ErrorInvalidCommand
		}

		cmd, kind := Resolve(w, agentName, op, args, rawStr)
		if kind != models.ErrorNone {
			return nil, kind
		}
		cmds = append(cmds, cmd)
	}
	return cmds, models.ErrorNone
}
