package models

// Action names recognized by the checker and evaluator.
const (
	ActionMove     = "move"
	ActionReach    = "reach"
	ActionGrasp    = "grasp"
	ActionPlace    = "place"
	ActionOpen     = "open"
	ActionClose    = "close"
	ActionHandover = "handover"
	ActionInteract = "interact"
	ActionPush     = "push"
)

// ActionSignature describes the positional kind constraints and optional
// name-scope filters for an action's parameters, not counting the acting
// agent (which a parsed Command carries in its own Agent field).
type ActionSignature struct {
	Name string
	// ParamKinds[i] is the set of entity kinds allowed at Command.Params[i]
	// (i.e. the first non-agent parameter is ParamKinds[0]).
	ParamKinds []map[EntityKind]bool
	// NameScopes[i], if present, restricts Command.Params[i]'s name to this set.
	NameScopes map[int]map[string]bool
}

func kinds(ks ...EntityKind) map[EntityKind]bool {
	m := make(map[EntityKind]bool, len(ks))
	for _, k := range ks {
		m[k] = true
	}
	return m
}

// ActionSignatures is the static registry of parameter typing rules,
// identical across every implementation of this evaluator.
var ActionSignatures = map[string]*ActionSignature{
	ActionMove: {
		Name:       ActionMove,
		ParamKinds: []map[EntityKind]bool{kinds(KindPosition, KindAsset, KindAgent)},
	},
	ActionReach: {
		Name:       ActionReach,
		ParamKinds: []map[EntityKind]bool{kinds(KindAsset, KindAgent)},
	},
	ActionGrasp: {
		Name:       ActionGrasp,
		ParamKinds: []map[EntityKind]bool{kinds(KindAsset)},
	},
	ActionPlace: {
		Name:       ActionPlace,
		ParamKinds: []map[EntityKind]bool{kinds(KindPosition, KindAsset)},
	},
	ActionOpen: {
		Name:       ActionOpen,
		ParamKinds: []map[EntityKind]bool{kinds(KindAsset)},
		NameScopes: map[int]map[string]bool{0: OpenCloseScope},
	},
	ActionClose: {
		Name:       ActionClose,
		ParamKinds: []map[EntityKind]bool{kinds(KindAsset)},
		NameScopes: map[int]map[string]bool{0: OpenCloseScope},
	},
	ActionHandover: {
		Name:       ActionHandover,
		ParamKinds: []map[EntityKind]bool{kinds(KindAsset), kinds(KindAgent)},
	},
	ActionInteract: {
		Name:       ActionInteract,
		ParamKinds: []map[EntityKind]bool{kinds(KindAsset)},
	},
	ActionPush: {
		Name:       ActionPush,
		ParamKinds: []map[EntityKind]bool{kinds(KindAsset), kinds(KindPosition, KindAsset)},
		NameScopes: map[int]map[string]bool{0: PushScope},
	},
}

// Command is a single parsed, type-resolved plan instruction: an acting
// agent performing Op against Params (not including the agent itself).
type Command struct {
	Op     string
	Agent  *Agent
	Params []Entity
	Raw    string
}

// Param returns the i-th non-agent parameter, or nil if out of range.
func (c *Command) Param(i int) Entity {
	if i < 0 || i >= len(c.Params) {
		return nil
	}
	return c.Params[i]
}

// AssetParam returns the i-th parameter as an *Asset, or nil if it is not one.
func (c *Command) AssetParam(i int) *Asset {
	a, _ := c.Param(i).(*Asset)
	return a
}

// AgentParam returns the i-th parameter as an *Agent, or nil if it is not one.
func (c *Command) AgentParam(i int) *Agent {
	a, _ := c.Param(i).(*Agent)
	return a
}
