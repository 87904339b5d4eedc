package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is a single ledger record. Amount is stored as a non-negative
// magnitude; its sign is derived from Kind at aggregation time.
//
// For Kind == KindTransfer, AccountID is nil, FromAccountID and ToAccountID
// are distinct non-nil accounts, and PairID groups exactly two records
// representing the two sides of one movement. For every other kind the
// transfer fields are nil.
type Transaction struct {
	ID     uuid.UUID
	Date   time.Time
	Amount float64
	Memo   string
	Kind   Kind

	CategoryID    *uuid.UUID
	CardID        *uuid.UUID
	PersonID      *uuid.UUID
	AccountID     *uuid.UUID
	FromAccountID *uuid.UUID
	ToAccountID   *uuid.UUID
	PairID        *uuid.UUID
}

// References reports whether the transaction touches the given account,
// either as its ordinary account or as either side of a transfer.
func (t Transaction) References(accountID uuid.UUID) bool {
	for _, ref := range []*uuid.UUID{t.AccountID, t.FromAccountID, t.ToAccountID} {
		if ref != nil && *ref == accountID {
			return true
		}
	}
	return false
}
