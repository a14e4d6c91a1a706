// Package parser converts the plan's surface command syntax into typed,
// entity-resolved models.Command values.
package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/arcwell-robotics/planeval/pkg/models"
	"github.com/arcwell-robotics/planeval/pkg/world"
)

// commandSyntax matches "<op[, arg]*>", whitespace-tolerant around commas
// and brackets, with '<' and '>' forbidden inside arguments.
var commandSyntax = regexp.MustCompile(`^<\s*([^,<>][^,<>]*)\s*(\s*,\s*[^,<>][^,<>]*)*>$`)

// ErrInvalidSyntax is returned by Split when raw does not match the surface
// command syntax.
var ErrInvalidSyntax = fmt.Errorf("%w: does not match <op, arg...> syntax", models.ErrMalformedCommand)

// Split tokenizes a "<op, a1, a2>" string into its op and argument strings.
// The op is lowercased; empty arguments are rejected.
func Split(raw string) (op string, args []string, err error) {
	trimmed := strings.TrimSpace(raw)
	if !commandSyntax.MatchString(trimmed) {
		return "", nil, ErrInvalidSyntax
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(trimmed, "<"), ">")
	parts := strings.Split(inner, ",")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return "", nil, ErrInvalidSyntax
		}
		parts[i] = p
	}
	return strings.ToLower(parts[0]), parts[1:], nil
}

// FromArray normalizes the array command form ["Move", "pumpkin"] the same
// way Split normalizes the string form: op lowercased, empty op rejected.
func FromArray(arr []string) (op string, args []string, err error) {
	if len(arr) == 0 || strings.TrimSpace(arr[0]) == "" {
		return "", nil, ErrInvalidSyntax
	}
	op = strings.ToLower(strings.TrimSpace(arr[0]))
	args = arr[1:]
	return op, args, nil
}

// Resolve turns an agent name, op and argument name list into a typed
// Command by looking each argument up in w. Unknown names resolve to an
// anonymous Position only for move/place; any other unknown name is an
// error.
func Resolve(w *world.World, agentName, op string, args []string, raw string) (*models.Command, models.ErrorKind) {
	agent, ok := w.Agents[agentName]
	if !ok {
		return nil, models.ErrorNotFoundEntity
	}

	if _, known := models.ActionSignatures[op]; !known {
		return nil, models.ErrorInvalidCommand
	}

	params := make([]models.Entity, len(args))
	for i, name := range args {
		if entity := w.ResolveByName(name); entity != nil {
			params[i] = entity
			continue
		}
		if op == models.ActionMove || op == models.ActionPlace {
			params[i] = &models.Position{Name: name}
			continue
		}
		return nil, models.ErrorNotFoundEntity
	}

	return &models.Command{Op: op, Agent: agent, Params: params, Raw: raw}, models.ErrorNone
}
