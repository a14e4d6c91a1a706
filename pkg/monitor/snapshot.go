// Package monitor evaluates goal and temporal constraint trees against the
// live world using attribute-path lookups, with an aligned-position mode for
// positional predicates.
package monitor

import (
	"encoding/json"

	"github.com/arcwell-robotics/planeval/pkg/models"
)

type positionSnapshot struct {
	Name     string `json:"name"`
	Isolated bool   `json:"isolated"`
}

type assetSnapshot struct {
	Name              string            `json:"name"`
	Pos               positionSnapshot  `json:"pos"`
	IsActivated       bool              `json:"is_activated"`
	IsContainer       bool              `json:"is_container"`
	ContainerPosition *positionSnapshot `json:"container_position,omitempty"`
}

type agentSnapshot struct {
	Name string           `json:"name"`
	Type string           `json:"type"`
	Pos  positionSnapshot `json:"pos"`
}

// Snapshot flattens an entity into a map[string]interface{} expr-lang can
// traverse by dotted path, the same json-roundtrip trick the engine uses to
// turn typed node output into a generic map for template/condition
// evaluation.
func Snapshot(e models.Entity) map[string]interface{} {
	var raw interface{}
	switch v := e.(type) {
	case *models.Asset:
		s := assetSnapshot{
			Name:        v.Name,
			Pos:         positionSnapshot{Name: v.Pos.Name, Isolated: v.Pos.Isolated},
			IsActivated: v.IsActivated,
			IsContainer: v.IsContainer,
		}
		if v.ContainerPosition != nil {
			s.ContainerPosition = &positionSnapshot{Name: v.ContainerPosition.Name, Isolated: v.ContainerPosition.Isolated}
		}
		raw = s
	case *models.Agent:
		raw = agentSnapshot{Name: v.Name, Type: v.Type, Pos: positionSnapshot{Name: v.Pos.Name, Isolated: v.Pos.Isolated}}
	default:
		return nil
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}
