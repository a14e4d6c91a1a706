package checker

import (
	"github.com/arcwell-robotics/planeval/pkg/models"
	"github.com/arcwell-robotics/planeval/pkg/world"
)

// Feasible evaluates every precondition for cmd against the current world:
// capability match, parameter typing/scoping, and the action's specific
// precondition. It never mutates w.
func Feasible(w *world.World, cmd *models.Command) bool {
	if !cmd.Agent.CanPerform(cmd.Op) {
		return false
	}
	if !typesAndScopesMatch(cmd) {
		return false
	}

	switch cmd.Op {
	case models.ActionMove:
		return cmd.Param(0) != nil
	case models.ActionReach:
		return feasibleReach(w, cmd)
	case models.ActionGrasp:
		return feasibleGrasp(cmd)
	case models.ActionPlace:
		return feasiblePlace(w, cmd)
	case models.ActionOpen:
		return feasibleOpen(cmd, true)
	case models.ActionClose:
		return feasibleOpen(cmd, false)
	case models.ActionHandover:
		return feasibleHandover(cmd)
	case models.ActionInteract:
		return feasibleInteract(cmd)
	case models.ActionPush:
		return feasiblePush(cmd)
	default:
		panic("checker: unknown action in dispatch table: " + cmd.Op)
	}
}

// typesAndScopesMatch checks cmd.Params against the action's static
// ActionSignature: each parameter's kind must be in the allowed set for its
// position, and if a name scope is declared for that position, the
// parameter's name must be a member of it.
func typesAndScopesMatch(cmd *models.Command) bool {
	sig, ok := models.ActionSignatures[cmd.Op]
	if !ok {
		return false
	}
	if len(cmd.Params) != len(sig.ParamKinds) {
		return false
	}
	for i, p := range cmd.Params {
		if p == nil || !sig.ParamKinds[i][p.EntityKind()] {
			return false
		}
		if scope, has := sig.NameScopes[i]; has && !scope[p.EntityName()] {
			return false
		}
	}
	return true
}

func feasibleReach(w *world.World, cmd *models.Command) bool {
	g := cmd.Agent
	t := cmd.Param(0)
	tPos := entityPosition(t)
	if tPos == nil || tPos.Isolated {
		return false
	}
	return EitherAligned(w, t, g)
}

func feasibleGrasp(cmd *models.Command) bool {
	g := cmd.Agent
	a := cmd.AssetParam(0)
	if a == nil || len(a.IsGraspedBy) > 0 {
		return false
	}
	if g.FreeEffectors() <= 0 {
		return false
	}
	return g.Reached(a)
}

func feasiblePlace(w *world.World, cmd *models.Command) bool {
	g := cmd.Agent
	d := cmd.Param(0)
	if len(g.CarriedObjects) == 0 {
		return false
	}
	switch dest := d.(type) {
	case *models.Position:
		return AlignedPosition(w, g, dest)
	case *models.Asset:
		if !EitherAligned(w, dest, g) {
			return false
		}
		if dest.ContainerPosition != nil {
			return !dest.ContainerPosition.Isolated
		}
		return true
	default:
		return false
	}
}

func feasibleOpen(cmd *models.Command, wantIsolated bool) bool {
	g := cmd.Agent
	a := cmd.AssetParam(0)
	if a == nil || a.ContainerPosition == nil {
		return false
	}
	if a.ContainerPosition.Isolated != wantIsolated {
		return false
	}
	if !g.Reached(a) {
		return false
	}
	if g.FreeEffectors() <= 0 {
		return false
	}
	return Colocated(g, a)
}

func feasibleHandover(cmd *models.Command) bool {
	g := cmd.Agent
	a := cmd.AssetParam(0)
	g2 := cmd.AgentParam(1)
	if g2 == nil || a == nil {
		return false
	}
	if !g.Carries(a) {
		return false
	}
	if g2.FreeEffectors() <= 0 {
		return false
	}
	return Colocated(g, g2)
}

func feasibleInteract(cmd *models.Command) bool {
	g := cmd.Agent
	a := cmd.AssetParam(0)
	if a == nil || a.IsActivated {
		return false
	}
	if !Colocated(g, a) {
		return false
	}
	if models.EffectorlessRobotTypes[g.Type] {
		return true
	}
	return g.Carries(a) || g.FreeEffectors() > 0
}

func feasiblePush(cmd *models.Command) bool {
	g := cmd.Agent
	a := cmd.AssetParam(0)
	if a == nil {
		return false
	}
	return Colocated(g, a)
}
