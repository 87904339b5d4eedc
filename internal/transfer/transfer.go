// Package transfer maintains the pair invariant for inter-account
// movements: every transfer exists as exactly two transaction records
// sharing one pair ID, with identical date, amount, memo and endpoints.
//
// All functions are pure over the transaction set they are given; the
// store applies the results and triggers persistence.
package transfer

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bankbook-dev/bankbook/internal/model"
)

// Pair is the two sides of one movement. Out and In are symmetric
// placeholders carrying the same endpoints; which side counts for a given
// account is decided at aggregation time by the viewpoint rules.
type Pair struct {
	Out model.Transaction
	In  model.Transaction
}

// Transactions returns the pair as a slice, outgoing side first.
func (p Pair) Transactions() []model.Transaction {
	return []model.Transaction{p.Out, p.In}
}

// legacy memo annotations stripped on edit, half-width and full-width
var memoStripTokens = []string{"(入金)", "(出金)", "（入金）", "（出金）", "資金移動"}

// CleanMemo removes legacy transfer annotations from a memo. A memo that
// legitimately contains one of the fixed tokens loses it too; that is a
// known edge of the fixed-list approach.
func CleanMemo(memo string) string {
	m := strings.TrimSpace(memo)
	for _, tok := range memoStripTokens {
		m = strings.ReplaceAll(m, tok, "")
	}
	return strings.TrimSpace(m)
}

// Create builds a fresh transfer pair from one account to another.
func Create(date time.Time, amt float64, memo string, fromID, toID uuid.UUID) (Pair, error) {
	if fromID == toID {
		return Pair{}, model.ValidationError{Field: "accounts", Reason: "transfer endpoints must differ"}
	}
	if !(amt > 0) || math.IsInf(amt, 0) {
		return Pair{}, model.ValidationError{Field: "amount", Reason: "transfer amount must be positive"}
	}

	pairID := uuid.New()
	from, to := fromID, toID
	mk := func() model.Transaction {
		return model.Transaction{
			ID:            uuid.New(),
			Date:          date,
			Amount:        amt,
			Memo:          memo,
			Kind:          model.KindTransfer,
			FromAccountID: &from,
			ToAccountID:   &to,
			PairID:        &pairID,
		}
	}
	return Pair{Out: mk(), In: mk()}, nil
}

// Replace deletes every transaction sharing pairID and creates a
// replacement pair under a freshly generated pair ID; the old ID is
// retired and never reused. The incoming memo is cleaned of legacy
// annotations before the new pair is written. Returns the transaction set
// without the old pair, plus the new pair to insert. On validation
// failure the input set is returned unchanged.
func Replace(txs []model.Transaction, pairID uuid.UUID, date time.Time, amt float64, memo string, fromID, toID uuid.UUID) ([]model.Transaction, Pair, error) {
	pair, err := Create(date, amt, CleanMemo(memo), fromID, toID)
	if err != nil {
		return txs, Pair{}, err
	}
	return DeleteGroup(txs, pairID), pair, nil
}

// DeleteGroup removes all transactions sharing pairID. Removing an unknown
// pair is a no-op.
func DeleteGroup(txs []model.Transaction, pairID uuid.UUID) []model.Transaction {
	out := make([]model.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.PairID != nil && *t.PairID == pairID {
			continue
		}
		out = append(out, t)
	}
	return out
}

// GroupIDs returns the IDs of every transaction sharing a pair with any of
// the given transaction IDs, including the IDs themselves. Used to expand
// a deletion selection so a pair is always removed whole.
func GroupIDs(txs []model.Transaction, ids map[uuid.UUID]bool) map[uuid.UUID]bool {
	pairs := make(map[uuid.UUID]bool)
	for _, t := range txs {
		if ids[t.ID] && t.PairID != nil {
			pairs[*t.PairID] = true
		}
	}
	out := make(map[uuid.UUID]bool, len(ids))
	for id := range ids {
		out[id] = true
	}
	for _, t := range txs {
		if t.PairID != nil && pairs[*t.PairID] {
			out[t.ID] = true
		}
	}
	return out
}
