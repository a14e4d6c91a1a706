// Package evaluator drives the plan state machine: parse, check, apply,
// monitor, repeat — producing a structured success/failure Verdict.
package evaluator

import "github.com/arcwell-robotics/planeval/pkg/models"

// StepTrace records one committed step's raw command strings and its
// compatibility verdict, for diagnosability beyond the bare
// success/error-kind pair. Steps that fail before being applied get no entry.
type StepTrace struct {
	Index      int      `json:"index"`
	Commands   []string `json:"commands"`
	Compatible bool     `json:"compatible"`
}

// Verdict is the evaluator's final answer for a plan against a ground truth.
type Verdict struct {
	Success      bool             `json:"success"`
	ErrorKind    models.ErrorKind `json:"error_kind"`
	EvaluationID string           `json:"evaluation_id"`
	FailedStep   int              `json:"failed_step"` // -1 on success; end-of-plan goal/temporal failures report the last step's index
	Trace        []StepTrace      `json:"trace"`
}

func failAt(id string, step int, kind models.ErrorKind, trace []StepTrace) *Verdict {
	return &Verdict{
		Success:      false,
		ErrorKind:    kind,
		EvaluationID: id,
		FailedStep:   step,
		Trace:        trace,
	}
}

func succeed(id string, trace []StepTrace) *Verdict {
	return &Verdict{
		Success:      true,
		ErrorKind:    models.ErrorNone,
		EvaluationID: id,
		FailedStep:   -1,
		Trace:        trace,
	}
}
