package adapter

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"regexp"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/itchyny/gojq"

	"github.com/arcwell-robotics/planeval/pkg/models"
	"github.com/arcwell-robotics/planeval/pkg/monitor"
	"github.com/arcwell-robotics/planeval/pkg/world"
)

var robotPlaceholder = regexp.MustCompile(`^R\d+$`)

var nullStripQuery = mustParseQuery("with_entries(select(.value != null))")

func mustParseQuery(src string) *gojq.Query {
	q, err := gojq.Parse(src)
	if err != nil {
		panic(err)
	}
	return q
}

var structValidator = validator.New()

type normalizedShape struct {
	TaskID string            `validate:"required"`
	Robots map[string]string `validate:"required,min=1"`
}

// stripNulls runs the with_entries(select(.value != null)) jq filter over a
// decoded JSON object, dropping null-valued entries.
func stripNulls(obj map[string]interface{}) (map[string]interface{}, error) {
	iter := nullStripQuery.Run(obj)
	v, ok := iter.Next()
	if !ok {
		return map[string]interface{}{}, nil
	}
	if err, isErr := v.(error); isErr {
		return nil, err
	}
	result, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("adapter: unexpected jq result type %T", v)
	}
	return result, nil
}

// Normalized is the evaluator-ready output of Normalize: a world build
// Metadata plus the goal and temporal constraints to monitor.
type Normalized struct {
	TaskID              string
	Meta                *world.Metadata
	GoalConstraints     []monitor.Constraint
	TemporalConstraints []monitor.TemporalConstraint
}

// Normalize strips null entries from the raw ground-truth document, skips
// robot-placeholder asset entries, derives container flags from the asset
// type name, and resolves each asset's initial position uniformly at random
// among its alternatives using rng (inject a seeded rng for determinism).
func Normalize(raw []byte, rng *rand.Rand) (*Normalized, error) {
	var generic map[string]interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedGroundTruth, err)
	}

	for _, key := range []string{"robots", "init_pos"} {
		sub, ok := generic[key].(map[string]interface{})
		if !ok {
			continue
		}
		cleaned, err := stripNulls(sub)
		if err != nil {
			return nil, fmt.Errorf("%w: stripping nulls from %s: %v", models.ErrMalformedGroundTruth, key, err)
		}
		generic[key] = cleaned
	}

	cleanedJSON, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedGroundTruth, err)
	}

	var gt RawGroundTruth
	if err := json.Unmarshal(cleanedJSON, &gt); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedGroundTruth, err)
	}

	if err := structValidator.Struct(&normalizedShape{TaskID: gt.TaskID, Robots: gt.Robots}); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedGroundTruth, err)
	}

	meta := &world.Metadata{
		Agents: make(map[string]world.AgentMeta, len(gt.Robots)),
		Assets: make(map[string]world.AssetMeta, len(gt.InitPos)),
	}

	for name, robotType := range gt.Robots {
		// Ground truth does not carry an explicit robot starting position;
		// agents start at a position named after themselves until a move
		// command relocates them.
		meta.Agents[name] = world.AgentMeta{Type: robotType, Pos: name}
	}

	// Visit assets in sorted order so a given seed always draws the same
	// alternatives; map iteration order would otherwise vary between runs.
	assetNames := make([]string, 0, len(gt.InitPos))
	for name := range gt.InitPos {
		assetNames = append(assetNames, name)
	}
	sort.Strings(assetNames)

	for _, name := range assetNames {
		alternatives := gt.InitPos[name]
		if robotPlaceholder.MatchString(name) || len(alternatives) == 0 {
			continue
		}
		chosen := alternatives[rng.Intn(len(alternatives))]
		isContainer := models.ContainerAssetNames[world.AssetTypeName(name)]
		meta.Assets[name] = world.AssetMeta{Pos: chosen, IsContainer: &isContainer}
	}

	goalConstraints := make([]monitor.Constraint, 0, len(gt.GoalConstraints))
	for _, group := range gt.GoalConstraints {
		goalConstraints = append(goalConstraints, monitor.Constraint(group))
	}

	temporalConstraints := make([]monitor.TemporalConstraint, 0, len(gt.TemporalConstraints))
	for _, tc := range gt.TemporalConstraints {
		groups := make(monitor.TemporalConstraint, 0, len(tc))
		for _, g := range tc {
			groups = append(groups, monitor.Constraint(g))
		}
		temporalConstraints = append(temporalConstraints, groups)
	}

	return &Normalized{
		TaskID:              gt.TaskID,
		Meta:                meta,
		GoalConstraints:     goalConstraints,
		TemporalConstraints: temporalConstraints,
	}, nil
}
