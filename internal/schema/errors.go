package schema

import (
	"fmt"
	"strings"
)

// Issue describes one failed constraint. Field is empty when the body as a
// whole is unusable (malformed JSON, not an object).
type Issue struct {
	Field   string `json:"field,omitempty"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError is returned when client-supplied data breaks the rules.
type ValidationError struct {
	Issues []Issue
}

// Error renders every issue in one human-readable line, e.g.
//
//	Validation error: Username must be at least 2 characters at "userName"
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		if is.Field == "" {
			parts = append(parts, is.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s at %q", is.Message, is.Field))
	}
	return "Validation error: " + strings.Join(parts, "; ")
}

// Has reports whether field failed any rule.
func (e *ValidationError) Has(field string) bool {
	for _, is := range e.Issues {
		if is.Field == field {
			return true
		}
	}
	return false
}
