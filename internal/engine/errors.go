package engine

import "fmt"

// InvalidInputError indicates a missing or malformed birth date or name
// where one was required. Not retried; the caller surfaces it as a
// "complete your profile" condition.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// IncompleteDataError indicates an assessment set with a malformed shape was
// fed into the compatibility calculator: one of the seven kinds is missing
// its primary label. The degenerate nil-set path is NOT this error; a nil
// set is a designed fallback and never throws.
type IncompleteDataError struct {
	Kind string
}

func (e *IncompleteDataError) Error() string {
	return fmt.Sprintf("assessment set is missing the %s assessment", e.Kind)
}
