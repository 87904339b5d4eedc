package model

import "fmt"

// ValidationError rejects a mutation before it reaches the transaction set.
// It is always surfaced to the caller synchronously and must block the
// mutation; nothing in the core swallows it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
