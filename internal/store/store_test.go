package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankbook-dev/bankbook/internal/model"
	"github.com/bankbook-dev/bankbook/internal/snapshot"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), snapshot.StateFilename)
	return Open(path, Options{Logger: zerolog.Nop()})
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOpenMissingFileStartsEmpty(t *testing.T) {
	s := newTestStore(t)

	assert.Empty(t, s.Accounts())
	assert.Empty(t, s.Transactions())
	assert.Equal(t, "Bank Management", s.AppTitle())
}

func TestUpsertValidation(t *testing.T) {
	s := newTestStore(t)
	acc := s.AddAccount("Checking", "1234567", "Main", "001")
	card := s.AddCard("Gold Card")

	cases := []struct {
		name  string
		tx    model.Transaction
		field string
	}{
		{
			name:  "unknown kind",
			tx:    model.Transaction{ID: uuid.New(), Amount: 100, Kind: model.Kind("loan")},
			field: "kind",
		},
		{
			name:  "zero amount",
			tx:    model.Transaction{ID: uuid.New(), Amount: 0, Kind: model.KindExpense, AccountID: &acc.ID},
			field: "amount",
		},
		{
			name:  "expense without account",
			tx:    model.Transaction{ID: uuid.New(), Amount: 100, Kind: model.KindExpense},
			field: "account",
		},
		{
			name: "expense with unknown account",
			tx: model.Transaction{
				ID: uuid.New(), Amount: 100, Kind: model.KindExpense,
				AccountID: ptr(uuid.New()),
			},
			field: "account",
		},
		{
			name:  "card usage without card",
			tx:    model.Transaction{ID: uuid.New(), Amount: 100, Kind: model.KindCardUsage},
			field: "card",
		},
		{
			name: "card payment without account",
			tx: model.Transaction{
				ID: uuid.New(), Amount: 100, Kind: model.KindCardPayment, CardID: &card.ID,
			},
			field: "account",
		},
		{
			name: "unknown category",
			tx: model.Transaction{
				ID: uuid.New(), Amount: 100, Kind: model.KindExpense,
				AccountID: &acc.ID, CategoryID: ptr(uuid.New()),
			},
			field: "category",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.UpsertTransaction(tc.tx)
			var verr model.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
	assert.Empty(t, s.Transactions())
}

func TestUpsertInsertsAtFrontAndReplaces(t *testing.T) {
	s := newTestStore(t)
	acc := s.AddAccount("Checking", "", "", "")

	first := model.Transaction{
		ID: uuid.New(), Date: date(2024, time.March, 1), Amount: 100,
		Memo: "coffee", Kind: model.KindExpense, AccountID: &acc.ID,
	}
	second := model.Transaction{
		ID: uuid.New(), Date: date(2024, time.March, 2), Amount: 200,
		Memo: "lunch", Kind: model.KindExpense, AccountID: &acc.ID,
	}
	require.NoError(t, s.UpsertTransaction(first))
	require.NoError(t, s.UpsertTransaction(second))

	txs := s.Transactions()
	require.Len(t, txs, 2)
	assert.Equal(t, second.ID, txs[0].ID, "newest entry lists first")

	second.Memo = "dinner"
	require.NoError(t, s.UpsertTransaction(second))
	txs = s.Transactions()
	require.Len(t, txs, 2)
	assert.Equal(t, "dinner", txs[0].Memo)
}

func TestSaveTransferAndDeleteRemovesPair(t *testing.T) {
	s := newTestStore(t)
	checking := s.AddAccount("Checking", "", "", "")
	savings := s.AddAccount("Savings", "", "", "")

	p, err := s.SaveTransfer(date(2024, time.March, 5), 5000, "monthly sweep", checking.ID, savings.ID)
	require.NoError(t, err)
	require.Len(t, s.Transactions(), 2)

	s.DeleteTransaction(p.Out.ID)
	assert.Empty(t, s.Transactions(), "deleting one side removes both")
}

func TestSaveTransferRejectsUnknownAccount(t *testing.T) {
	s := newTestStore(t)
	checking := s.AddAccount("Checking", "", "", "")

	_, err := s.SaveTransfer(date(2024, time.March, 5), 5000, "", checking.ID, uuid.New())
	var verr model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "to", verr.Field)
	assert.Empty(t, s.Transactions())
}

func TestEditTransferRetiresPair(t *testing.T) {
	s := newTestStore(t)
	checking := s.AddAccount("Checking", "", "", "")
	savings := s.AddAccount("Savings", "", "", "")

	old, err := s.SaveTransfer(date(2024, time.March, 5), 5000, "sweep", checking.ID, savings.ID)
	require.NoError(t, err)

	fresh, err := s.EditTransfer(*old.Out.PairID, date(2024, time.March, 6), 6000, "sweep", checking.ID, savings.ID)
	require.NoError(t, err)
	assert.NotEqual(t, *old.Out.PairID, *fresh.Out.PairID)

	txs := s.Transactions()
	require.Len(t, txs, 2)
	for _, tx := range txs {
		assert.Equal(t, *fresh.Out.PairID, *tx.PairID)
		assert.Equal(t, float64(6000), tx.Amount)
	}
}

func TestEditTransferValidationLeavesSetUntouched(t *testing.T) {
	s := newTestStore(t)
	checking := s.AddAccount("Checking", "", "", "")
	savings := s.AddAccount("Savings", "", "", "")

	old, err := s.SaveTransfer(date(2024, time.March, 5), 5000, "sweep", checking.ID, savings.ID)
	require.NoError(t, err)

	_, err = s.EditTransfer(*old.Out.PairID, date(2024, time.March, 6), -1, "sweep", checking.ID, savings.ID)
	require.Error(t, err)

	txs := s.Transactions()
	require.Len(t, txs, 2)
	assert.Equal(t, *old.Out.PairID, *txs[0].PairID)
}

func TestRemoveAccountDeniedWhileReferenced(t *testing.T) {
	s := newTestStore(t)
	acc := s.AddAccount("Checking", "", "", "")
	require.NoError(t, s.UpsertTransaction(model.Transaction{
		ID: uuid.New(), Amount: 100, Kind: model.KindExpense, AccountID: &acc.ID,
	}))

	require.ErrorIs(t, s.RemoveAccount(acc.ID), ErrAccountInUse)
	assert.Len(t, s.Accounts(), 1)

	s.DeleteTransactions(map[uuid.UUID]bool{s.Transactions()[0].ID: true})
	require.NoError(t, s.RemoveAccount(acc.ID))
	assert.Empty(t, s.Accounts())
}

func TestRemoveAccountForgetsSettlementMapping(t *testing.T) {
	s := newTestStore(t)
	acc := s.AddAccount("Checking", "", "", "")
	card := s.AddCard("Gold Card")
	s.SetDefaultSettlementAccountID(&acc.ID, card.ID)

	require.NoError(t, s.RemoveAccount(acc.ID))
	_, ok := s.DefaultSettlementAccountID(card.ID)
	assert.False(t, ok)
}

func TestRemoveCategoryNullifiesReferences(t *testing.T) {
	s := newTestStore(t)
	acc := s.AddAccount("Checking", "", "", "")
	cat := s.AddCategory("Groceries")
	require.NoError(t, s.UpsertTransaction(model.Transaction{
		ID: uuid.New(), Amount: 100, Kind: model.KindExpense,
		AccountID: &acc.ID, CategoryID: &cat.ID,
	}))

	s.RemoveCategory(cat.ID)
	assert.Empty(t, s.Categories())
	txs := s.Transactions()
	require.Len(t, txs, 1)
	assert.Nil(t, txs[0].CategoryID)
}

func TestRemoveCardNullifiesReferences(t *testing.T) {
	s := newTestStore(t)
	acc := s.AddAccount("Checking", "", "", "")
	card := s.AddCard("Gold Card")
	s.SetDefaultSettlementAccountID(&acc.ID, card.ID)
	require.NoError(t, s.UpsertTransaction(model.Transaction{
		ID: uuid.New(), Amount: 1200, Kind: model.KindCardUsage, CardID: &card.ID,
	}))

	s.RemoveCard(card.ID)
	assert.Empty(t, s.Cards())
	txs := s.Transactions()
	require.Len(t, txs, 1)
	assert.Nil(t, txs[0].CardID)
	_, ok := s.DefaultSettlementAccountID(card.ID)
	assert.False(t, ok)
}

func TestSettleCardRemembersAccount(t *testing.T) {
	s := newTestStore(t)
	acc := s.AddAccount("Checking", "", "", "")
	card := s.AddCard("Gold Card")

	_, err := s.SettleCard(card.ID, nil, 1200, date(2024, time.March, 27), "march bill")
	var verr model.ValidationError
	require.ErrorAs(t, err, &verr, "no account given and none remembered")

	tx, err := s.SettleCard(card.ID, &acc.ID, 1200, date(2024, time.March, 27), "march bill")
	require.NoError(t, err)
	assert.Equal(t, model.KindCardPayment, tx.Kind)

	remembered, ok := s.DefaultSettlementAccountID(card.ID)
	require.True(t, ok)
	assert.Equal(t, acc.ID, remembered)

	// The remembered account carries the next settlement.
	tx, err = s.SettleCard(card.ID, nil, 900, date(2024, time.April, 27), "april bill")
	require.NoError(t, err)
	assert.Equal(t, acc.ID, *tx.AccountID)
}

func TestSynchronousSavePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), snapshot.StateFilename)
	s := Open(path, Options{Logger: zerolog.Nop()})
	acc := s.AddAccount("Checking", "1234567", "Main", "001")
	require.NoError(t, s.UpsertTransaction(model.Transaction{
		ID: uuid.New(), Date: date(2024, time.March, 1), Amount: 100,
		Memo: "coffee", Kind: model.KindExpense, AccountID: &acc.ID,
	}))

	reopened := Open(path, Options{Logger: zerolog.Nop()})
	require.Len(t, reopened.Accounts(), 1)
	require.Len(t, reopened.Transactions(), 1)
	assert.Equal(t, "coffee", reopened.Transactions()[0].Memo)
}

func TestDebouncedSaveWritesAfterDelay(t *testing.T) {
	path := filepath.Join(t.TempDir(), snapshot.StateFilename)
	s := Open(path, Options{AutosaveDelay: 10 * time.Millisecond, Logger: zerolog.Nop()})
	s.AddAccount("Checking", "", "", "")

	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist, "write is deferred")

	require.Eventually(t, func() bool {
		_, err := os.Stat(path)
		return err == nil
	}, time.Second, 5*time.Millisecond)
}

func TestFlushWritesPendingState(t *testing.T) {
	path := filepath.Join(t.TempDir(), snapshot.StateFilename)
	s := Open(path, Options{AutosaveDelay: time.Hour, Logger: zerolog.Nop()})
	s.AddAccount("Checking", "", "", "")

	require.NoError(t, s.Flush())
	reopened := Open(path, Options{Logger: zerolog.Nop()})
	assert.Len(t, reopened.Accounts(), 1)
}

func TestOpenMalformedFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), snapshot.StateFilename)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := Open(path, Options{Logger: zerolog.Nop()})
	assert.Empty(t, s.Accounts())
}

func ptr[T any](v T) *T { return &v }
