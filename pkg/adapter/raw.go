// Package adapter normalizes an external ground-truth record into the
// world.Metadata and monitor constraints the evaluator consumes, stripping
// null entries and resolving initial-position alternatives.
package adapter

import "github.com/arcwell-robotics/planeval/pkg/monitor"

// RawGroundTruth mirrors the external ground-truth JSON shape. Null-valued
// map entries are stripped by Normalize before use.
type RawGroundTruth struct {
	TaskID              string                      `json:"task_id"`
	Description         string                      `json:"description"`
	Robots              map[string]string           `json:"robots"`
	InitPos             map[string][]string         `json:"init_pos"`
	GoalConstraints     [][]*monitor.TargetStatus   `json:"goal_constraints"`
	TemporalConstraints [][][]*monitor.TargetStatus `json:"temporal_constraints"`
}
