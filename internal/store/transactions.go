package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/bankbook-dev/bankbook/internal/model"
	"github.com/bankbook-dev/bankbook/internal/transfer"
)

// UpsertTransaction inserts a new transaction or replaces the one with
// the same ID. New transactions go to the front so recent entries list
// first. Transfer records are managed through SaveTransfer and
// EditTransfer; upserting one directly is still validated but callers
// are responsible for keeping its pair symmetric.
func (s *Store) UpsertTransaction(t model.Transaction) error {
	s.mu.Lock()
	if err := s.validateLocked(t); err != nil {
		s.mu.Unlock()
		return err
	}
	replaced := false
	for i := range s.txs {
		if s.txs[i].ID == t.ID {
			s.txs[i] = t
			replaced = true
			break
		}
	}
	if !replaced {
		s.txs = append([]model.Transaction{t}, s.txs...)
	}
	s.mu.Unlock()
	s.scheduleSave()
	return nil
}

// TransactionByID returns a transaction by ID.
func (s *Store) TransactionByID(id uuid.UUID) (model.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.txs {
		if t.ID == id {
			return t, true
		}
	}
	return model.Transaction{}, false
}

// SaveTransfer records a new transfer between two accounts as a fresh
// pair of transactions.
func (s *Store) SaveTransfer(date time.Time, amount float64, memo string, fromID, toID uuid.UUID) (transfer.Pair, error) {
	s.mu.Lock()
	if err := s.requireAccountsLocked(fromID, toID); err != nil {
		s.mu.Unlock()
		return transfer.Pair{}, err
	}
	p, err := transfer.Create(date, amount, memo, fromID, toID)
	if err != nil {
		s.mu.Unlock()
		return transfer.Pair{}, err
	}
	s.txs = append(p.Transactions(), s.txs...)
	s.mu.Unlock()
	s.scheduleSave()
	return p, nil
}

// EditTransfer replaces the pair identified by pairID with a freshly
// minted pair carrying the new values. The old pair identifier is
// retired; on validation failure nothing changes.
func (s *Store) EditTransfer(pairID uuid.UUID, date time.Time, amount float64, memo string, fromID, toID uuid.UUID) (transfer.Pair, error) {
	s.mu.Lock()
	if err := s.requireAccountsLocked(fromID, toID); err != nil {
		s.mu.Unlock()
		return transfer.Pair{}, err
	}
	rest, p, err := transfer.Replace(s.txs, pairID, date, amount, memo, fromID, toID)
	if err != nil {
		s.mu.Unlock()
		return transfer.Pair{}, err
	}
	s.txs = append(p.Transactions(), rest...)
	s.mu.Unlock()
	s.scheduleSave()
	return p, nil
}

// DeleteTransaction removes a transaction; if it belongs to a transfer
// pair the counterpart goes with it.
func (s *Store) DeleteTransaction(id uuid.UUID) {
	s.DeleteTransactions(map[uuid.UUID]bool{id: true})
}

// DeleteTransactions removes the selected transactions, widening the
// selection so no half of a transfer pair survives alone.
func (s *Store) DeleteTransactions(ids map[uuid.UUID]bool) {
	s.mu.Lock()
	doomed := transfer.GroupIDs(s.txs, ids)
	out := s.txs[:0]
	for _, t := range s.txs {
		if !doomed[t.ID] {
			out = append(out, t)
		}
	}
	s.txs = out
	s.mu.Unlock()
	s.scheduleSave()
}

// SettleCard records a card payment from the given account (or the
// remembered settlement account when accountID is nil) and remembers
// the account for next time.
func (s *Store) SettleCard(cardID uuid.UUID, accountID *uuid.UUID, amount float64, date time.Time, memo string) (model.Transaction, error) {
	s.mu.Lock()
	if accountID == nil {
		acc, ok := s.cardPaymentAccount[cardID]
		if !ok {
			s.mu.Unlock()
			return model.Transaction{}, model.ValidationError{Field: "account", Reason: "no settlement account remembered for this card"}
		}
		accountID = &acc
	}
	t := model.Transaction{
		ID:        uuid.New(),
		Date:      date,
		Amount:    amount,
		Memo:      memo,
		Kind:      model.KindCardPayment,
		AccountID: accountID,
		CardID:    &cardID,
	}
	if err := s.validateLocked(t); err != nil {
		s.mu.Unlock()
		return model.Transaction{}, err
	}
	s.txs = append([]model.Transaction{t}, s.txs...)
	s.cardPaymentAccount[cardID] = *accountID
	s.mu.Unlock()
	s.scheduleSave()
	return t, nil
}
