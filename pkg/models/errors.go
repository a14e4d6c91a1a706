package models

import "errors"

// Structural errors surfaced while building a World or resolving a plan.
// These are Go errors returned to the caller of a constructor; they are
// distinct from the evaluator's categorical ErrorKind verdicts.
var (
	ErrUnknownAction     = errors.New("unknown action")
	ErrUnknownRobotType  = errors.New("unknown robot type")
	ErrMalformedGroundTruth = errors.New("malformed ground truth")
	ErrMalformedCommand  = errors.New("malformed command syntax")
)

// ErrorKind is the fixed, diagnosable failure category returned alongside a
// failed Verdict.
type ErrorKind string

const (
	ErrorNone                      ErrorKind = ""
	ErrorInvalidCommand            ErrorKind = "INVALID_COMMAND"
	ErrorNotFoundEntity            ErrorKind = "NOT_FOUND_ENTITY"
	ErrorActionNotFeasible         ErrorKind = "ACTION_NOT_FEASIBLE"
	ErrorFailedGoalConstraint      ErrorKind = "FAILED_GOAL_CONSTRAINT"
	ErrorActionNotCompatible       ErrorKind = "ACTION_NOT_COMPATIBLE"
	ErrorFailedTemporalConstraint  ErrorKind = "FAILED_TEMPORAL_CONSTRAINT"
)

// Description returns the fixed human-readable string for an ErrorKind.
func (k ErrorKind) Description() string {
	switch k {
	case ErrorInvalidCommand:
		return "plan command did not match the surface command syntax"
	case ErrorNotFoundEntity:
		return "a command parameter did not resolve to a known agent or asset"
	case ErrorActionNotFeasible:
		return "an action's preconditions were not satisfied by the current world state"
	case ErrorFailedGoalConstraint:
		return "the world state at the end of the plan did not satisfy a goal constraint"
	case ErrorActionNotCompatible:
		return "two or more commands in the same step were not jointly compatible"
	case ErrorFailedTemporalConstraint:
		return "an ordered temporal constraint was not satisfied in order"
	default:
		return "no error"
	}
}
