package model

import "github.com/google/uuid"

// Account is a bank account in the household ledger. Transactions refer to
// accounts by ID only; history lookups are computed from the transaction
// list on demand, never kept as back-pointers.
type Account struct {
	ID         uuid.UUID
	Name       string
	Number     string // optional account number
	BranchName string // optional
	BranchCode string // optional
}
