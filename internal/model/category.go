package model

import "github.com/google/uuid"

// Category is a spending category. Credit cards share the same shape and
// are stored as a separate collection of Category values.
//
// Deleting a category nullifies references in transactions; it never
// cascades to the transactions themselves.
type Category struct {
	ID   uuid.UUID
	Name string
}

// Person is a household member a transaction can be tagged with. Present in
// the model, referenced by transactions, but not restored from persisted
// snapshots (see snapshot.Decode).
type Person struct {
	ID   uuid.UUID
	Name string
	Note string
}
