package evaluator

import (
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/arcwell-robotics/planeval/pkg/checker"
	"github.com/arcwell-robotics/planeval/pkg/models"
	"github.com/arcwell-robotics/planeval/pkg/monitor"
	"github.com/arcwell-robotics/planeval/pkg/parser"
	"github.com/arcwell-robotics/planeval/pkg/world"
)

// Evaluator is a stateless driver: construct once, call Evaluate any number
// of times with distinct worlds from distinct goroutines.
type Evaluator struct {
	log *slog.Logger
}

// New returns an Evaluator. A nil logger falls back to slog.Default().
func New(log *slog.Logger) *Evaluator {
	if log == nil {
		log = slog.Default()
	}
	return &Evaluator{log: log}
}

// Evaluate runs plan against w, checking feasibility and compatibility at
// each step, applying the step, and tracking goal/temporal progress. It
// returns on the first failing check.
func (e *Evaluator) Evaluate(
	w *world.World,
	plan []parser.RawStep,
	goalConstraints []monitor.Constraint,
	temporalConstraints []monitor.TemporalConstraint,
) *Verdict {
	id := uuid.NewString()
	mon := monitor.New()
	progress := make([]*monitor.TemporalProgress, len(temporalConstraints))
	for i, tc := range temporalConstraints {
		progress[i] = monitor.NewTemporalProgress(tc)
	}

	var trace []StepTrace

	for i, rawStep := range plan {
		log := e.log.With("evaluation_id", id, "step", i)

		cmds, kind := parser.ParseStep(w, rawStep)
		if kind == models.ErrorInvalidCommand {
			log.Debug("step failed to parse")
			return failAt(id, i, models.ErrorInvalidCommand, trace)
		}
		if kind == models.ErrorNotFoundEntity {
			log.Debug("step referenced an unknown entity")
			return failAt(id, i, models.ErrorNotFoundEntity, trace)
		}

		orderedCmds := append([]*models.Command(nil), cmds...)
		sort.Slice(orderedCmds, func(a, b int) bool { return orderedCmds[a].Agent.Name < orderedCmds[b].Agent.Name })

		for _, cmd := range orderedCmds {
			if !checker.Feasible(w, cmd) {
				log.Debug("command not feasible", "op", cmd.Op, "agent", cmd.Agent.Name)
				return failAt(id, i, models.ErrorActionNotFeasible, trace)
			}
		}

		compatible := checker.Compatible(orderedCmds)
		if !compatible {
			log.Debug("step not compatible")
			return failAt(id, i, models.ErrorActionNotCompatible, trace)
		}

		w.ApplyStep(orderedCmds)

		rawStrs := make([]string, len(orderedCmds))
		for j, c := range orderedCmds {
			rawStrs[j] = c.Raw
		}
		trace = append(trace, StepTrace{Index: i, Commands: rawStrs, Compatible: compatible})

		for _, p := range progress {
			if mon.Advance(w, p) {
				log.Debug("temporal constraint regressed")
				return failAt(id, i, models.ErrorFailedTemporalConstraint, trace)
			}
		}
	}

	for _, p := range progress {
		if !p.Complete() {
			return failAt(id, len(plan)-1, models.ErrorFailedTemporalConstraint, trace)
		}
	}

	for _, c := range goalConstraints {
		if !mon.Satisfied(w, c) {
			return failAt(id, len(plan)-1, models.ErrorFailedGoalConstraint, trace)
		}
	}

	return succeed(id, trace)
}
