package world

import "github.com/arcwell-robotics/planeval/pkg/models"

// Apply runs a single command against the world immediately. Used by tests
// and by any non-concurrent caller; ApplyStep is the batched form the
// evaluator uses for a plan step.
func (w *World) Apply(cmd *models.Command) {
	w.ApplyStep([]*models.Command{cmd})
}

// ApplyStep applies every command of a plan step atomically: each command's
// intended writes are computed against the pre-step snapshot of
// ReachedObjects/CarriedObjects/IsGraspedBy, queued, and only committed once
// every command in the step has been inspected. This makes step evaluation
// independent of the order commands are iterated in.
func (w *World) ApplyStep(cmds []*models.Command) {
	var writes []func()

	for _, cmd := range cmds {
		switch cmd.Op {
		case models.ActionMove:
			g := cmd.Agent
			target := cmd.Param(0)
			writes = append(writes, func() {
				g.Pos = &models.Position{Name: target.EntityName()}
				g.ReachedObjects = nil
			})

		case models.ActionReach:
			g := cmd.Agent
			a := cmd.AssetParam(0)
			preReached := append([]*models.Asset(nil), g.ReachedObjects...)
			writes = append(writes, func() {
				next := preReached
				if len(next) >= g.EndEffectorNum && len(next) > 0 {
					next = next[1:]
				}
				g.ReachedObjects = append(append([]*models.Asset(nil), next...), a)
			})

		case models.ActionGrasp:
			g := cmd.Agent
			preReached := append([]*models.Asset(nil), g.ReachedObjects...)
			writes = append(writes, func() {
				for _, a := range preReached {
					g.CarriedObjects = append(g.CarriedObjects, a)
					a.IsGraspedBy = append(a.IsGraspedBy, g)
					a.Pos = &models.Position{Name: g.Name}
				}
				g.ReachedObjects = nil
			})

		case models.ActionPlace:
			g := cmd.Agent
			dest := cmd.Param(0)
			preCarried := append([]*models.Asset(nil), g.CarriedObjects...)
			writes = append(writes, func() {
				for _, a := range preCarried {
					switch d := dest.(type) {
					case *models.Position:
						a.Pos = d
					case *models.Asset:
						if d.ContainerPosition != nil {
							a.Pos = d.ContainerPosition
						} else {
							a.Pos = d.Pos
						}
					}
					a.IsGraspedBy = removeAgent(a.IsGraspedBy, g)
				}
				g.CarriedObjects = nil
			})

		case models.ActionOpen:
			a := cmd.AssetParam(0)
			writes = append(writes, func() { a.ContainerPosition.Isolated = false })

		case models.ActionClose:
			a := cmd.AssetParam(0)
			writes = append(writes, func() { a.ContainerPosition.Isolated = true })

		case models.ActionHandover:
			g := cmd.Agent
			a := cmd.AssetParam(0)
			g2 := cmd.AgentParam(1)
			writes = append(writes, func() {
				g.CarriedObjects = removeAsset(g.CarriedObjects, a)
				g2.CarriedObjects = append(g2.CarriedObjects, a)
				a.IsGraspedBy = removeAgent(a.IsGraspedBy, g)
				a.IsGraspedBy = append(a.IsGraspedBy, g2)
				a.Pos.Name = g2.Name
			})

		case models.ActionInteract:
			a := cmd.AssetParam(0)
			writes = append(writes, func() { a.IsActivated = true })

		case models.ActionPush:
			g := cmd.Agent
			a := cmd.AssetParam(0)
			dest := cmd.Param(1)
			writes = append(writes, func() {
				g.Pos.Name = a.Name
				a.Pos.Name = dest.EntityName()
			})

		default:
			panic("world: unknown action in dispatch table: " + cmd.Op)
		}
	}

	for _, commit := range writes {
		commit()
	}
}
