// Package world holds the live simulated scene — agents, assets and their
// positions — and the two mutation primitives (Apply, ApplyStep) that
// advance it according to a plan's commands.
package world

import "github.com/arcwell-robotics/planeval/pkg/models"

// World is the mutable scene the checker and monitor observe and the
// evaluator advances. The checker and monitor never mutate it; only Apply
// and ApplyStep do.
type World struct {
	Agents map[string]*models.Agent
	Assets map[string]*models.Asset
}

// New returns an empty world, ready for Build to populate.
func New() *World {
	return &World{
		Agents: make(map[string]*models.Agent),
		Assets: make(map[string]*models.Asset),
	}
}

// ResolveByName returns the agent or asset with the given name, or nil if
// neither map has it. Used by the checker and monitor for name-based lookups
// (e.g. following an aligned-position link, or a constraint target name).
func (w *World) ResolveByName(name string) models.Entity {
	if a, ok := w.Agents[name]; ok {
		return a
	}
	if a, ok := w.Assets[name]; ok {
		return a
	}
	return nil
}

func removeAgent(list []*models.Agent, g *models.Agent) []*models.Agent {
	out := list[:0:0]
	for _, x := range list {
		if x != g {
			out = append(out, x)
		}
	}
	return out
}

func removeAsset(list []*models.Asset, a *models.Asset) []*models.Asset {
	out := list[:0:0]
	for _, x := range list {
		if x != a {
			out = append(out, x)
		}
	}
	return out
}
