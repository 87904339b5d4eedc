package store

import (
	"math"

	"github.com/google/uuid"

	"github.com/bankbook-dev/bankbook/internal/model"
)

// validateLocked enforces the per-kind reference requirements before a
// transaction enters the set. Caller holds s.mu.
func (s *Store) validateLocked(t model.Transaction) error {
	if !t.Kind.Valid() {
		return model.ValidationError{Field: "kind", Reason: "unknown kind " + string(t.Kind)}
	}
	if !(t.Amount > 0) || math.IsInf(t.Amount, 0) {
		return model.ValidationError{Field: "amount", Reason: "must be a positive finite number"}
	}

	switch t.Kind {
	case model.KindExpense, model.KindIncome, model.KindCarryOver, model.KindBalance:
		if err := s.requireAccountLocked("account", t.AccountID); err != nil {
			return err
		}
	case model.KindCardUsage:
		if err := s.requireCardLocked(t.CardID); err != nil {
			return err
		}
	case model.KindCardPayment:
		if err := s.requireAccountLocked("account", t.AccountID); err != nil {
			return err
		}
		if err := s.requireCardLocked(t.CardID); err != nil {
			return err
		}
	case model.KindTransfer:
		if err := s.requireAccountLocked("from", t.FromAccountID); err != nil {
			return err
		}
		if err := s.requireAccountLocked("to", t.ToAccountID); err != nil {
			return err
		}
		if *t.FromAccountID == *t.ToAccountID {
			return model.ValidationError{Field: "to", Reason: "transfer requires two distinct accounts"}
		}
		if t.PairID == nil {
			return model.ValidationError{Field: "pairID", Reason: "transfer records must belong to a pair"}
		}
	}

	if t.CategoryID != nil {
		if _, ok := s.categoryLocked(*t.CategoryID); !ok {
			return model.ValidationError{Field: "category", Reason: "unknown category"}
		}
	}
	return nil
}

func (s *Store) requireAccountLocked(field string, id *uuid.UUID) error {
	if id == nil {
		return model.ValidationError{Field: field, Reason: "account is required"}
	}
	if _, ok := s.accountLocked(*id); !ok {
		return model.ValidationError{Field: field, Reason: "unknown account"}
	}
	return nil
}

func (s *Store) requireCardLocked(id *uuid.UUID) error {
	if id == nil {
		return model.ValidationError{Field: "card", Reason: "credit card is required"}
	}
	if _, ok := s.cardLocked(*id); !ok {
		return model.ValidationError{Field: "card", Reason: "unknown credit card"}
	}
	return nil
}

func (s *Store) requireAccountsLocked(fromID, toID uuid.UUID) error {
	if _, ok := s.accountLocked(fromID); !ok {
		return model.ValidationError{Field: "from", Reason: "unknown account"}
	}
	if _, ok := s.accountLocked(toID); !ok {
		return model.ValidationError{Field: "to", Reason: "unknown account"}
	}
	return nil
}
