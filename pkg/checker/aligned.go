// Package checker implements the pure feasibility and per-step compatibility
// predicates. Nothing in this package mutates a world.World.
package checker

import (
	"github.com/arcwell-robotics/planeval/pkg/models"
	"github.com/arcwell-robotics/planeval/pkg/world"
)

// entityPosition returns the effective position of an entity: itself if it
// already is a Position, otherwise its current Pos field.
func entityPosition(e models.Entity) *models.Position {
	switch v := e.(type) {
	case *models.Position:
		return v
	case *models.Asset:
		return v.Pos
	case *models.Agent:
		return v.Pos
	default:
		return nil
	}
}

// AlignedPosition reports whether query is reachable from from by following
// pos.name links through agents and assets, transitively, or equals from's
// own name once the chain dead-ends at a name not in the world. A visited
// set keyed by position name terminates the walk on cycles (e.g. A.pos = B,
// B.pos = A), returning false rather than looping.
func AlignedPosition(w *world.World, from models.Entity, query *models.Position) bool {
	if query == nil {
		return false
	}
	if p, ok := from.(*models.Position); ok {
		return p.Name == query.Name
	}
	entity := from
	visited := make(map[string]bool)
	for {
		cur := entityPosition(entity)
		if cur == nil {
			return false
		}
		if visited[cur.Name] {
			return false
		}
		visited[cur.Name] = true
		if cur.Name == query.Name {
			return true
		}
		owner := w.ResolveByName(cur.Name)
		if owner == nil {
			return entity.EntityName() == query.Name
		}
		entity = owner
	}
}

// EitherAligned reports whether a is aligned with b's position or b is
// aligned with a's position — the symmetric check reach and place use for
// their positional preconditions.
func EitherAligned(w *world.World, a, b models.Entity) bool {
	posB := entityPosition(b)
	posA := entityPosition(a)
	return AlignedPosition(w, a, posB) || AlignedPosition(w, b, posA)
}

// Colocated reports the simpler, non-transitive relative-position test used
// by open/close/handover/interact/push: either entity's pos.name equals the
// other's name directly.
func Colocated(a, b models.Entity) bool {
	posA := entityPosition(a)
	posB := entityPosition(b)
	if posA != nil && posA.Name == b.EntityName() {
		return true
	}
	if posB != nil && posB.Name == a.EntityName() {
		return true
	}
	return false
}
