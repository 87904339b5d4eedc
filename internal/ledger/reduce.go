// Package ledger computes totals and views over a transaction set. All
// functions are pure: they never mutate their input and hold no state
// between calls.
package ledger

import (
	"math"

	"github.com/google/uuid"

	"github.com/bankbook-dev/bankbook/internal/model"
)

// magnitude reads an amount as a non-negative finite value. Stored amounts
// are magnitudes, but older snapshots may carry negatives; abs-before-sign
// avoids double negation. Non-finite values contribute nothing rather than
// poisoning a total.
func magnitude(amt float64) float64 {
	if math.IsNaN(amt) || math.IsInf(amt, 0) {
		return 0
	}
	return math.Abs(amt)
}

// AccountTotal reduces transactions from the viewpoint of one account.
// Transfers contribute only on the side facing the account: minus when the
// account is the source, plus when it is the destination. Card usage does
// not move an account balance until settled by a card payment.
func AccountTotal(txs []model.Transaction, accountID uuid.UUID) float64 {
	var total float64
	for _, t := range txs {
		amt := magnitude(t.Amount)
		switch t.Kind {
		case model.KindTransfer:
			if t.FromAccountID != nil && *t.FromAccountID == accountID {
				total -= amt
			} else if t.ToAccountID != nil && *t.ToAccountID == accountID {
				total += amt
			}
		case model.KindCardUsage:
			// no balance effect
		default:
			total += float64(t.Kind.Info().CashflowSign) * amt
		}
	}
	return total
}

// GlobalTotal reduces a whole-ledger list where no account viewpoint
// applies. Transfers, carry-overs and opening balances are excluded; card
// payments subtract; everything else, card usage included, adds.
func GlobalTotal(txs []model.Transaction) float64 {
	var total float64
	for _, t := range txs {
		amt := magnitude(t.Amount)
		switch t.Kind {
		case model.KindCardPayment:
			total -= amt
		case model.KindTransfer, model.KindBalance, model.KindCarryOver:
			// excluded
		default:
			total += amt
		}
	}
	return total
}

// CreditUsageTotal sums card-tagged usage, optionally restricted to one
// card. Only kinds flagged AffectsCreditUsage count; settling payments do
// not reduce this figure.
func CreditUsageTotal(txs []model.Transaction, cardID *uuid.UUID) float64 {
	var total float64
	for _, t := range txs {
		if t.CardID == nil || !t.Kind.Info().AffectsCreditUsage {
			continue
		}
		if cardID != nil && *t.CardID != *cardID {
			continue
		}
		total += magnitude(t.Amount)
	}
	return total
}

// ForAccount filters to transactions touching the given account, either
// directly or as a transfer endpoint.
func ForAccount(txs []model.Transaction, accountID uuid.UUID) []model.Transaction {
	var out []model.Transaction
	for _, t := range txs {
		if t.References(accountID) {
			out = append(out, t)
		}
	}
	return out
}

// DedupePairs collapses each transfer pair to a single representative row
// for a single-account view. The incoming side wins when the viewpoint
// account is the destination, then the outgoing side, then (for a
// malformed pair) whichever record was seen first. Non-transfer rows pass
// through unchanged; input order is preserved.
func DedupePairs(txs []model.Transaction, viewpoint uuid.UUID) []model.Transaction {
	var out []model.Transaction
	seen := make(map[uuid.UUID]bool)
	for _, t := range txs {
		if t.PairID == nil {
			out = append(out, t)
			continue
		}
		pid := *t.PairID
		if seen[pid] {
			continue
		}
		seen[pid] = true

		rep := t
		for _, s := range txs {
			if s.PairID == nil || *s.PairID != pid {
				continue
			}
			if s.ToAccountID != nil && *s.ToAccountID == viewpoint {
				rep = s
				break
			}
			if s.FromAccountID != nil && *s.FromAccountID == viewpoint {
				rep = s
			}
		}
		out = append(out, rep)
	}
	return out
}
