package checker

import "github.com/arcwell-robotics/planeval/pkg/models"

// compatiblePair reports whether two operations referencing the same asset
// may coexist in a step. move pairs freely with anything; reach and place
// pair with each other (and with move, already covered above); every other
// same-asset pairing — including an operation paired with itself, other than
// move — is forbidden.
func compatiblePair(op1, op2 string) bool {
	if op1 == models.ActionMove || op2 == models.ActionMove {
		return true
	}
	return (op1 == models.ActionReach && op2 == models.ActionPlace) ||
		(op1 == models.ActionPlace && op2 == models.ActionReach)
}

// dedupKey is the agent name the duplicate-check groups commands by. It is
// taken from the command's first explicit parameter rather than the acting
// agent, and only when that parameter is an agent (e.g. move toward another
// robot). Commands whose first parameter is an asset or a position
// (grasp/open/close/interact/reach/place on an asset) yield no key and are
// never rejected by this check; shared assets are judged by compatiblePair.
func dedupKey(cmd *models.Command) (string, bool) {
	if g := cmd.AgentParam(0); g != nil {
		return g.Name, true
	}
	return "", false
}

// Compatible evaluates the per-step compatibility rules across every command
// in a single step.
func Compatible(cmds []*models.Command) bool {
	seen := make(map[string]bool, len(cmds))
	for _, cmd := range cmds {
		key, ok := dedupKey(cmd)
		if !ok {
			continue
		}
		if seen[key] {
			return false
		}
		seen[key] = true
	}

	byAsset := make(map[*models.Asset][]*models.Command)
	for _, cmd := range cmds {
		for _, p := range cmd.Params {
			if a, ok := p.(*models.Asset); ok {
				byAsset[a] = append(byAsset[a], cmd)
			}
		}
	}
	for _, group := range byAsset {
		if len(group) < 2 {
			continue
		}
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if !compatiblePair(group[i].Op, group[j].Op) {
					return false
				}
			}
		}
	}

	for _, cmd := range cmds {
		if cmd.Op != models.ActionClose {
			continue
		}
		closing := cmd.AssetParam(0)
		if closing == nil || closing.ContainerPosition == nil {
			continue
		}
		for _, other := range cmds {
			if other == cmd {
				continue
			}
			if other.Op == models.ActionMove || other.Op == models.ActionClose {
				continue
			}
			for _, p := range other.Params {
				if a, ok := p.(*models.Asset); ok && a.Pos == closing.ContainerPosition {
					return false
				}
			}
		}
	}

	return true
}
