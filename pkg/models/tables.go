package models

// RobotCapabilities maps a robot type to the set of actions it may perform.
// Identical across every implementation of this evaluator.
var RobotCapabilities = map[string]map[string]bool{
	"panda":       set("reach", "grasp", "place", "open", "close", "handover", "interact"),
	"fetch":       set("move", "reach", "grasp", "place", "open", "close", "handover", "interact"),
	"unitree_go2": set("move", "push", "interact"),
	"unitree_h1":  set("move", "reach", "grasp", "place", "open", "close", "handover", "interact"),
	"stompy":      set("move", "reach", "grasp", "place", "open", "close", "handover", "interact"),
	"anymal_c":    set("move", "push", "interact"),
}

// EndEffectorCounts maps a robot type to its number of end-effectors, the
// budget bounding concurrent reach and grasp holdings.
var EndEffectorCounts = map[string]int{
	"panda":       1,
	"fetch":       1,
	"unitree_go2": 0,
	"unitree_h1":  2,
	"stompy":      2,
	"anymal_c":    0,
}

// ContainerAssetNames is the set of asset type names that are constructed
// with a synthesized ContainerPosition.
var ContainerAssetNames = set("plate", "cabinet", "drawer", "bowl", "sink", "toaster", "tray", "cardboardbox")

// InitiallyIsolatedContainers is the subset of ContainerAssetNames built
// with Isolated=true; every other container starts open.
var InitiallyIsolatedContainers = set("cabinet")

// OpenCloseScope restricts open/close to names in this set.
var OpenCloseScope = set("cabinet", "drawer", "kitchen cabinet", "kitchen drawer")

// PushScope restricts push's target-object parameter to names in this set.
var PushScope = set("box", "cardboardbox")

// EffectorlessRobotTypes are robot types with zero end-effectors; their
// interact precondition skips the carried-or-free-effector requirement.
var EffectorlessRobotTypes = set("unitree_go2", "anymal_c")

func set(items ...string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, it := range items {
		m[it] = true
	}
	return m
}

// NewAgentFromType looks up the static capability and effector tables for a
// robot type and returns a ready Agent at the given position.
func NewAgentFromType(name, robotType string, pos *Position) *Agent {
	caps := RobotCapabilities[robotType]
	actions := make(map[string]bool, len(caps))
	for a := range caps {
		actions[a] = true
	}
	return &Agent{
		Name:           name,
		Type:           robotType,
		Pos:            pos,
		AvailActions:   actions,
		EndEffectorNum: EndEffectorCounts[robotType],
	}
}
