package monitor

import (
	"reflect"
	"sort"
	"strings"

	"github.com/arcwell-robotics/planeval/pkg/checker"
	"github.com/arcwell-robotics/planeval/pkg/models"
	"github.com/arcwell-robotics/planeval/pkg/world"
)

// TargetStatus is a predicate over one named entity's attribute paths,
// optionally in aligned-position mode for positional paths.
type TargetStatus struct {
	Type         string                 `json:"type"` // "asset" or "agent"
	Name         string                 `json:"name"`
	IsSatisfied  bool                   `json:"is_satisfied"`
	Status       map[string]interface{} `json:"status"`         // attr-path -> expected value
	CheckPosType string                 `json:"check_pos_type"` // "static" (default) or "aligned"
}

// Constraint is satisfied iff every one of its target statuses is satisfied.
type Constraint []*TargetStatus

// Monitor evaluates constraints and temporal constraints against a world,
// caching compiled attribute-path expressions across calls.
type Monitor struct {
	cache *pathCache
}

// New returns a Monitor with a fresh path cache.
func New() *Monitor {
	return &Monitor{cache: newPathCache(256)}
}

func (m *Monitor) resolve(w *world.World, ts *TargetStatus) models.Entity {
	if ts.Type == "agent" {
		if a, ok := w.Agents[ts.Name]; ok {
			return a
		}
		return nil
	}
	if a, ok := w.Assets[ts.Name]; ok {
		return a
	}
	return nil
}

// EvaluateStatus resolves ts's entity and checks every (attr_path, expected)
// pair in ts.Status, short-circuiting on the first mismatch. The raw match
// result is then compared against ts.IsSatisfied: a status declared
// IsSatisfied=false is itself satisfied exactly when the raw condition
// fails.
func (m *Monitor) EvaluateStatus(w *world.World, ts *TargetStatus) bool {
	entity := m.resolve(w, ts)
	if entity == nil {
		return false == ts.IsSatisfied
	}

	paths := make([]string, 0, len(ts.Status))
	for p := range ts.Status {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	rawMatch := true
	for _, path := range paths {
		if !m.matchPath(w, entity, path, ts.Status[path], ts.CheckPosType) {
			rawMatch = false
			break
		}
	}
	return rawMatch == ts.IsSatisfied
}

func (m *Monitor) matchPath(w *world.World, entity models.Entity, path string, expected interface{}, checkPosType string) bool {
	if checkPosType == "aligned" && strings.HasSuffix(path, "pos.name") {
		name, ok := expected.(string)
		if !ok {
			return false
		}
		return checker.AlignedPosition(w, entity, &models.Position{Name: name})
	}

	snapshot := Snapshot(entity)
	if snapshot == nil {
		return false
	}
	actual, err := m.cache.compileAndRun(path, snapshot)
	if err != nil {
		return false
	}
	return valuesEqual(actual, expected)
}

// valuesEqual compares an expr-lang result against a JSON-decoded expected
// value, normalizing numeric types since JSON numbers decode as float64.
func valuesEqual(actual, expected interface{}) bool {
	af, aok := toFloat(actual)
	ef, eok := toFloat(expected)
	if aok && eok {
		return af == ef
	}
	return reflect.DeepEqual(actual, expected)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Satisfied reports whether every target status in the constraint holds.
func (m *Monitor) Satisfied(w *world.World, c Constraint) bool {
	for _, ts := range c {
		if !m.EvaluateStatus(w, ts) {
			return false
		}
	}
	return true
}
