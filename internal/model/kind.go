package model

import "fmt"

// Kind classifies a transaction. The set is closed; every aggregation rule
// downstream is driven by the metadata table below rather than by
// per-variant branching.
type Kind string

const (
	KindExpense     Kind = "expense"
	KindIncome      Kind = "income"
	KindTransfer    Kind = "transfer"
	KindCardUsage   Kind = "cardUsage"
	KindCardPayment Kind = "cardPayment"
	KindCarryOver   Kind = "carryOver"
	KindBalance     Kind = "balance"
)

// KindInfo carries the per-kind aggregation and display metadata.
type KindInfo struct {
	// CashflowSign is +1 for income-like kinds, -1 for expense-like kinds,
	// and 0 for kinds excluded from plain cashflow sums. Transfers are 0
	// here because their contribution depends on the viewpoint account.
	CashflowSign int
	// AffectsCreditUsage marks kinds counted toward card usage totals.
	// Card payments settle usage, they do not add to it.
	AffectsCreditUsage bool
	// Symbol and Color are display hints for list rendering.
	Symbol string
	Color  string
}

var kindTable = map[Kind]KindInfo{
	KindExpense:     {CashflowSign: -1, Symbol: "↓", Color: "red"},
	KindIncome:      {CashflowSign: +1, Symbol: "↑", Color: "green"},
	KindTransfer:    {CashflowSign: 0, Symbol: "⇄", Color: "blue"},
	KindCardUsage:   {CashflowSign: 0, AffectsCreditUsage: true, Symbol: "▣", Color: "indigo"},
	KindCardPayment: {CashflowSign: -1, Symbol: "¤", Color: "orange"},
	KindCarryOver:   {CashflowSign: +1, Symbol: "↻", Color: "purple"},
	KindBalance:     {CashflowSign: +1, Symbol: "＝", Color: "teal"},
}

// kindOrder is the stable presentation order.
var kindOrder = []Kind{
	KindExpense, KindIncome, KindTransfer,
	KindCardUsage, KindCardPayment, KindCarryOver, KindBalance,
}

// Info returns the metadata for k. Unknown kinds get zero metadata, which
// excludes them from every aggregate.
func (k Kind) Info() KindInfo {
	return kindTable[k]
}

// Valid reports whether k is one of the seven known kinds.
func (k Kind) Valid() bool {
	_, ok := kindTable[k]
	return ok
}

// Kinds returns all kinds in presentation order.
func Kinds() []Kind {
	out := make([]Kind, len(kindOrder))
	copy(out, kindOrder)
	return out
}

// ParseKind converts a string (as persisted or typed on the CLI) to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown transaction kind %q", s)
	}
	return k, nil
}
