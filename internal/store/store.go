// Package store owns the in-memory entity collections and orchestrates
// the ledger core: it validates mutations, routes transfer edits through
// the pairing engine, and persists a snapshot after every change with a
// debounced autosave.
package store

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bankbook-dev/bankbook/internal/model"
	"github.com/bankbook-dev/bankbook/internal/snapshot"
)

// ErrAccountInUse denies deleting an account that transactions still
// reference; history is preserved by making the caller reassign first.
var ErrAccountInUse = errors.New("account is referenced by transactions")

// Store holds the entity graph between mutations. The ledger, transfer
// and snapshot packages never see it: they work on data passed in.
type Store struct {
	mu sync.Mutex

	categories  []model.Category
	accounts    []model.Account
	creditCards []model.Category
	txs         []model.Transaction
	// cardPaymentAccount remembers the last-used settlement account per card.
	cardPaymentAccount map[uuid.UUID]uuid.UUID
	personName         string
	appTitle           string
	avatarFilename     string

	path  string
	log   zerolog.Logger
	delay time.Duration
	timer *time.Timer
}

// Options tunes a Store.
type Options struct {
	// AutosaveDelay debounces saves after mutations; zero or negative
	// saves synchronously on every mutation.
	AutosaveDelay time.Duration
	Logger        zerolog.Logger
}

// Open loads the snapshot at path into a new Store. A missing or
// unreadable snapshot is logged and replaced by the default empty state;
// opening never fails.
func Open(path string, opts Options) *Store {
	s := &Store{
		path:  path,
		log:   opts.Logger,
		delay: opts.AutosaveDelay,
	}

	g, err := snapshot.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Warn().Err(err).Str("path", path).Msg("starting from empty state")
	}
	s.applyGraph(g)
	return s
}

func (s *Store) applyGraph(g snapshot.Graph) {
	s.categories = g.Categories
	s.accounts = g.Accounts
	s.creditCards = g.CreditCards
	s.txs = g.Transactions
	s.cardPaymentAccount = g.CardPaymentAccount
	if s.cardPaymentAccount == nil {
		s.cardPaymentAccount = make(map[uuid.UUID]uuid.UUID)
	}
	s.personName = g.PersonName
	s.appTitle = g.AppTitle
	s.avatarFilename = g.AvatarFilename
}

func (s *Store) graph() snapshot.Graph {
	return snapshot.Graph{
		Categories:         s.categories,
		Accounts:           s.accounts,
		CreditCards:        s.creditCards,
		Transactions:       s.txs,
		CardPaymentAccount: s.cardPaymentAccount,
		PersonName:         s.personName,
		AppTitle:           s.appTitle,
		AvatarFilename:     s.avatarFilename,
	}
}

// Accessors. Callers treat the returned slices as read-only snapshots.

func (s *Store) Accounts() []model.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts
}

func (s *Store) Categories() []model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categories
}

func (s *Store) Cards() []model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creditCards
}

func (s *Store) Transactions() []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.txs
}

func (s *Store) PersonName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.personName
}

func (s *Store) SetPersonName(name string) {
	s.mu.Lock()
	s.personName = name
	s.mu.Unlock()
	s.scheduleSave()
}

func (s *Store) AppTitle() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appTitle
}

func (s *Store) SetAppTitle(title string) {
	s.mu.Lock()
	s.appTitle = title
	s.mu.Unlock()
	s.scheduleSave()
}

// AccountByID returns an account by ID.
func (s *Store) AccountByID(id uuid.UUID) (model.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accountLocked(id)
}

func (s *Store) accountLocked(id uuid.UUID) (model.Account, bool) {
	for _, a := range s.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return model.Account{}, false
}

// CategoryByID resolves a category or credit card by ID; the two
// collections share one identifier space for lookup purposes.
func (s *Store) CategoryByID(id uuid.UUID) (model.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categoryLocked(id)
}

func (s *Store) categoryLocked(id uuid.UUID) (model.Category, bool) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	for _, c := range s.creditCards {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// CardByID returns a credit card by ID.
func (s *Store) CardByID(id uuid.UUID) (model.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cardLocked(id)
}

func (s *Store) cardLocked(id uuid.UUID) (model.Category, bool) {
	for _, c := range s.creditCards {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// AddAccount creates and stores a new account.
func (s *Store) AddAccount(name, number, branchName, branchCode string) model.Account {
	a := model.Account{
		ID: uuid.New(), Name: name,
		Number: number, BranchName: branchName, BranchCode: branchCode,
	}
	s.mu.Lock()
	s.accounts = append(s.accounts, a)
	s.mu.Unlock()
	s.scheduleSave()
	return a
}

// AddCategory creates and stores a new spending category.
func (s *Store) AddCategory(name string) model.Category {
	c := model.Category{ID: uuid.New(), Name: name}
	s.mu.Lock()
	s.categories = append(s.categories, c)
	s.mu.Unlock()
	s.scheduleSave()
	return c
}

// AddCard creates and stores a new credit card.
func (s *Store) AddCard(name string) model.Category {
	c := model.Category{ID: uuid.New(), Name: name}
	s.mu.Lock()
	s.creditCards = append(s.creditCards, c)
	s.mu.Unlock()
	s.scheduleSave()
	return c
}

// RemoveAccount deletes an account. Accounts with any referencing
// transaction are protected: the delete is denied with ErrAccountInUse
// until the caller reassigns or removes the history.
func (s *Store) RemoveAccount(id uuid.UUID) error {
	s.mu.Lock()
	for _, t := range s.txs {
		if t.References(id) {
			s.mu.Unlock()
			return ErrAccountInUse
		}
	}
	s.accounts = removeByID(s.accounts, id, func(a model.Account) uuid.UUID { return a.ID })
	for card, acc := range s.cardPaymentAccount {
		if acc == id {
			delete(s.cardPaymentAccount, card)
		}
	}
	s.mu.Unlock()
	s.scheduleSave()
	return nil
}

// RemoveCategory deletes a category and nullifies references to it in
// transactions; the transactions themselves survive.
func (s *Store) RemoveCategory(id uuid.UUID) {
	s.mu.Lock()
	s.categories = removeByID(s.categories, id, func(c model.Category) uuid.UUID { return c.ID })
	for i := range s.txs {
		if s.txs[i].CategoryID != nil && *s.txs[i].CategoryID == id {
			s.txs[i].CategoryID = nil
		}
	}
	s.mu.Unlock()
	s.scheduleSave()
}

// RemoveCard deletes a credit card, nullifies card references in
// transactions and forgets its settlement account.
func (s *Store) RemoveCard(id uuid.UUID) {
	s.mu.Lock()
	s.creditCards = removeByID(s.creditCards, id, func(c model.Category) uuid.UUID { return c.ID })
	for i := range s.txs {
		if s.txs[i].CardID != nil && *s.txs[i].CardID == id {
			s.txs[i].CardID = nil
		}
	}
	delete(s.cardPaymentAccount, id)
	s.mu.Unlock()
	s.scheduleSave()
}

func removeByID[T any](items []T, id uuid.UUID, key func(T) uuid.UUID) []T {
	out := items[:0]
	for _, it := range items {
		if key(it) != id {
			out = append(out, it)
		}
	}
	return out
}

// DefaultSettlementAccountID returns the remembered settlement account
// for a card.
func (s *Store) DefaultSettlementAccountID(cardID uuid.UUID) (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.cardPaymentAccount[cardID]
	return acc, ok
}

// SetDefaultSettlementAccountID remembers (or, with nil, forgets) the
// settlement account for a card.
func (s *Store) SetDefaultSettlementAccountID(accountID *uuid.UUID, cardID uuid.UUID) {
	s.mu.Lock()
	if accountID == nil {
		delete(s.cardPaymentAccount, cardID)
	} else {
		s.cardPaymentAccount[cardID] = *accountID
	}
	s.mu.Unlock()
	s.scheduleSave()
}
