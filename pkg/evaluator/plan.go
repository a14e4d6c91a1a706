package evaluator

import (
	"encoding/json"
	"fmt"

	"github.com/arcwell-robotics/planeval/pkg/models"
	"github.com/arcwell-robotics/planeval/pkg/parser"
)

type wrappedStep struct {
	Step    int            `json:"step"`
	Actions parser.RawStep `json:"actions"`
}

// DecodePlan accepts either step shape a plan document may use: an array of
// {"step": n, "actions": {...}} records, or an array of bare
// {agent: command} records.
func DecodePlan(raw []byte) ([]parser.RawStep, error) {
	var generic []json.RawMessage
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedGroundTruth, err)
	}

	steps := make([]parser.RawStep, 0, len(generic))
	for _, entry := range generic {
		var wrapped wrappedStep
		if err := json.Unmarshal(entry, &wrapped); err == nil && wrapped.Actions != nil {
			steps = append(steps, wrapped.Actions)
			continue
		}
		var direct parser.RawStep
		if err := json.Unmarshal(entry, &direct); err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrMalformedGroundTruth, err)
		}
		delete(direct, "step")
		steps = append(steps, direct)
	}
	return steps, nil
}
