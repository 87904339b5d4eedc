// Package snapshot converts the in-memory entity graph to a flat,
// versioned JSON document and back. Relationships are stored as
// identifier references and re-linked on load; a dangling reference
// degrades to absent rather than failing the whole document.
package snapshot

import (
	"time"

	"github.com/google/uuid"

	"github.com/bankbook-dev/bankbook/internal/model"
)

// Version tags the snapshot schema. Version 1 lacked the
// cardPaymentAccount map; decoding treats the missing field as empty.
const Version = 2

// State is the persisted document. Field names are the wire contract.
type State struct {
	Version            int                `json:"version"`
	Categories         []CategoryState    `json:"categories"`
	Accounts           []AccountState     `json:"accounts"`
	CreditCards        []CategoryState    `json:"creditCards"`
	CardPaymentAccount map[string]string  `json:"cardPaymentAccount,omitempty"`
	Transactions       []TransactionState `json:"transactions"`
	PersonName         string             `json:"personName"`
	AppTitle           string             `json:"appTitle"`
	AvatarFilename     string             `json:"avatarFilename,omitempty"`
}

// CategoryState is the flat form shared by categories and credit cards.
type CategoryState struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// AccountState is the flat form of an account.
type AccountState struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Number     string    `json:"number,omitempty"`
	BranchName string    `json:"branchName,omitempty"`
	BranchCode string    `json:"branchCode,omitempty"`
}

// TransactionState is the flat form of a transaction; relationships are
// identifier references only.
type TransactionState struct {
	ID            uuid.UUID  `json:"id"`
	Date          time.Time  `json:"date"`
	Amount        float64    `json:"amount"`
	Memo          string     `json:"memo"`
	Kind          string     `json:"kind"`
	CategoryID    *uuid.UUID `json:"categoryID,omitempty"`
	CardID        *uuid.UUID `json:"cardID,omitempty"`
	PersonID      *uuid.UUID `json:"personID,omitempty"`
	AccountID     *uuid.UUID `json:"accountID,omitempty"`
	FromAccountID *uuid.UUID `json:"fromAccountID,omitempty"`
	ToAccountID   *uuid.UUID `json:"toAccountID,omitempty"`
	PairID        *uuid.UUID `json:"pairID,omitempty"`
}

// Graph is the in-memory entity graph the store owns.
type Graph struct {
	Categories         []model.Category
	Accounts           []model.Account
	CreditCards        []model.Category
	Transactions       []model.Transaction
	CardPaymentAccount map[uuid.UUID]uuid.UUID
	PersonName         string
	AppTitle           string
	AvatarFilename     string
}

// DefaultGraph is the state used when nothing has been persisted yet, or
// when the persisted file cannot be read.
func DefaultGraph() Graph {
	return Graph{
		CardPaymentAccount: make(map[uuid.UUID]uuid.UUID),
		AppTitle:           "Bank Management",
	}
}

// Encode flattens a graph into its persisted form.
func Encode(g Graph) State {
	s := State{
		Version:        Version,
		Categories:     make([]CategoryState, 0, len(g.Categories)),
		Accounts:       make([]AccountState, 0, len(g.Accounts)),
		CreditCards:    make([]CategoryState, 0, len(g.CreditCards)),
		Transactions:   make([]TransactionState, 0, len(g.Transactions)),
		PersonName:     g.PersonName,
		AppTitle:       g.AppTitle,
		AvatarFilename: g.AvatarFilename,
	}
	for _, c := range g.Categories {
		s.Categories = append(s.Categories, CategoryState{ID: c.ID, Name: c.Name})
	}
	for _, c := range g.CreditCards {
		s.CreditCards = append(s.CreditCards, CategoryState{ID: c.ID, Name: c.Name})
	}
	for _, a := range g.Accounts {
		s.Accounts = append(s.Accounts, AccountState{
			ID: a.ID, Name: a.Name,
			Number: a.Number, BranchName: a.BranchName, BranchCode: a.BranchCode,
		})
	}
	if len(g.CardPaymentAccount) > 0 {
		s.CardPaymentAccount = make(map[string]string, len(g.CardPaymentAccount))
		for card, acc := range g.CardPaymentAccount {
			s.CardPaymentAccount[card.String()] = acc.String()
		}
	}
	for _, t := range g.Transactions {
		s.Transactions = append(s.Transactions, TransactionState{
			ID:            t.ID,
			Date:          t.Date,
			Amount:        t.Amount,
			Memo:          t.Memo,
			Kind:          string(t.Kind),
			CategoryID:    t.CategoryID,
			CardID:        t.CardID,
			PersonID:      t.PersonID,
			AccountID:     t.AccountID,
			FromAccountID: t.FromAccountID,
			ToAccountID:   t.ToAccountID,
			PairID:        t.PairID,
		})
	}
	return s
}

// Decode rebuilds the entity graph. Lookup maps for categories (credit
// cards included) and accounts are built first; each transaction
// reference is then resolved through them, dropping identifiers that no
// longer exist. Person references are not restored.
func Decode(s State) Graph {
	g := DefaultGraph()
	if s.PersonName != "" {
		g.PersonName = s.PersonName
	}
	if s.AppTitle != "" {
		g.AppTitle = s.AppTitle
	}
	g.AvatarFilename = s.AvatarFilename

	catByID := make(map[uuid.UUID]bool, len(s.Categories)+len(s.CreditCards))
	for _, c := range s.Categories {
		g.Categories = append(g.Categories, model.Category{ID: c.ID, Name: c.Name})
		catByID[c.ID] = true
	}
	for _, c := range s.CreditCards {
		g.CreditCards = append(g.CreditCards, model.Category{ID: c.ID, Name: c.Name})
		catByID[c.ID] = true
	}

	accByID := make(map[uuid.UUID]bool, len(s.Accounts))
	for _, a := range s.Accounts {
		g.Accounts = append(g.Accounts, model.Account{
			ID: a.ID, Name: a.Name,
			Number: a.Number, BranchName: a.BranchName, BranchCode: a.BranchCode,
		})
		accByID[a.ID] = true
	}

	resolve := func(ref *uuid.UUID, known map[uuid.UUID]bool) *uuid.UUID {
		if ref == nil || !known[*ref] {
			return nil
		}
		id := *ref
		return &id
	}

	for _, st := range s.Transactions {
		g.Transactions = append(g.Transactions, model.Transaction{
			ID:            st.ID,
			Date:          st.Date,
			Amount:        st.Amount,
			Memo:          st.Memo,
			Kind:          model.Kind(st.Kind),
			CategoryID:    resolve(st.CategoryID, catByID),
			CardID:        resolve(st.CardID, catByID),
			PersonID:      nil,
			AccountID:     resolve(st.AccountID, accByID),
			FromAccountID: resolve(st.FromAccountID, accByID),
			ToAccountID:   resolve(st.ToAccountID, accByID),
			PairID:        copyID(st.PairID),
		})
	}

	for card, acc := range s.CardPaymentAccount {
		cardID, err1 := uuid.Parse(card)
		accID, err2 := uuid.Parse(acc)
		if err1 != nil || err2 != nil || !catByID[cardID] || !accByID[accID] {
			continue
		}
		g.CardPaymentAccount[cardID] = accID
	}

	return g
}

func copyID(ref *uuid.UUID) *uuid.UUID {
	if ref == nil {
		return nil
	}
	id := *ref
	return &id
}
