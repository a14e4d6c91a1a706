package monitor

import "github.com/arcwell-robotics/planeval/pkg/world"

// TemporalConstraint is an ordered sequence of constraint groups that must
// become true, in order, over the plan's timeline.
type TemporalConstraint []Constraint

// TemporalProgress tracks how far a single TemporalConstraint has advanced.
type TemporalProgress struct {
	Constraint TemporalConstraint
	Progress   int // number of groups satisfied in order so far
}

// NewTemporalProgress starts tracking tc from the beginning.
func NewTemporalProgress(tc TemporalConstraint) *TemporalProgress {
	return &TemporalProgress{Constraint: tc}
}

// Complete reports whether every group of the temporal constraint has fired
// in order.
func (p *TemporalProgress) Complete() bool {
	return p.Progress >= len(p.Constraint)
}

// Advance re-checks progress against the current world state after a step
// has been applied. Once complete, a temporal constraint stays complete and
// Advance is a no-op. Otherwise: if the next expected group is not yet
// satisfied, nothing changes. If it is satisfied, progress advances — unless
// the group immediately before it (already matched earlier) no longer holds
// at this same step, in which case Advance reports a regression failure.
func (m *Monitor) Advance(w *world.World, p *TemporalProgress) (regressed bool) {
	if p.Complete() {
		return false
	}
	next := p.Constraint[p.Progress]
	if !m.Satisfied(w, next) {
		return false
	}
	if p.Progress > 0 {
		prev := p.Constraint[p.Progress-1]
		if !m.Satisfied(w, prev) {
			return true
		}
	}
	p.Progress++
	return false
}
