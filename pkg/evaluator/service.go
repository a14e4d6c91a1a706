package evaluator

import (
	"log/slog"
	"math/rand"

	"github.com/arcwell-robotics/planeval/pkg/adapter"
	"github.com/arcwell-robotics/planeval/pkg/world"
)

// RunFromJSON is the single entry point external collaborators (the VLM
// harness, the CLI, the HTTP service) use: given a raw ground-truth document
// and a raw plan document, it normalizes the ground truth, builds the world,
// decodes the plan, and returns a Verdict.
//
// seed makes the ground truth's initial-position-alternative selection
// reproducible; callers that don't care about determinism can pass
// time.Now().UnixNano().
func RunFromJSON(groundTruthJSON, planJSON []byte, seed int64, log *slog.Logger) (*Verdict, error) {
	rng := rand.New(rand.NewSource(seed))

	normalized, err := adapter.Normalize(groundTruthJSON, rng)
	if err != nil {
		return nil, err
	}

	w := world.Build(normalized.Meta)

	steps, err := DecodePlan(planJSON)
	if err != nil {
		return nil, err
	}

	return New(log).Evaluate(w, steps, normalized.GoalConstraints, normalized.TemporalConstraints), nil
}
