package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankbook-dev/bankbook/internal/model"
)

func at(y, m, d, hh int) model.Transaction {
	return model.Transaction{
		ID:   uuid.New(),
		Date: time.Date(y, time.Month(m), d, hh, 0, 0, 0, time.UTC),
		Kind: model.KindExpense,
	}
}

func TestMonthBoundariesHalfOpen(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		at(2025, 1, 31, 23), // before
		at(2025, 2, 1, 0),   // exactly at start: included
		at(2025, 2, 14, 9),
		at(2025, 2, 28, 23),
		at(2025, 3, 1, 0), // exactly at next month start: excluded
	}

	got := Month(2025, 2).Filter(txs, now)
	require.Len(t, got, 3)
	for _, tx := range got {
		assert.Equal(t, time.February, tx.Date.Month())
	}
}

func TestMonthLengths(t *testing.T) {
	now := time.Now()

	start, end, bounded := Month(2024, 2).Bounds(now) // leap February
	require.True(t, bounded)
	assert.Equal(t, 29*24*time.Hour, end.Sub(start))

	start, end, _ = Month(2025, 12).Bounds(now) // year rollover
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, now.Location()), end)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, now.Location()), start)
}

func TestMonthClamped(t *testing.T) {
	now := time.Now()
	start, _, _ := Month(2025, 0).Bounds(now)
	assert.Equal(t, time.January, start.Month())
	start, _, _ = Month(2025, 13).Bounds(now)
	assert.Equal(t, time.December, start.Month())
}

func TestToday(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)
	txs := []model.Transaction{
		at(2025, 6, 9, 23),
		at(2025, 6, 10, 0),
		at(2025, 6, 10, 23),
		at(2025, 6, 11, 0),
	}
	got := Today().Filter(txs, now)
	require.Len(t, got, 2)
	for _, tx := range got {
		assert.Equal(t, 10, tx.Date.Day())
	}
}

func TestThisMonth(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)
	txs := []model.Transaction{
		at(2025, 5, 31, 23),
		at(2025, 6, 1, 0),
		at(2025, 6, 30, 23),
		at(2025, 7, 1, 0),
	}
	got := ThisMonth().Filter(txs, now)
	assert.Len(t, got, 2)
}

func TestAllUnbounded(t *testing.T) {
	txs := []model.Transaction{at(1999, 1, 1, 0), at(2099, 12, 31, 23)}
	got := All().Filter(txs, time.Now())
	assert.Len(t, got, 2)
}

func TestParseScope(t *testing.T) {
	s, err := ParseScope("today")
	require.NoError(t, err)
	assert.Equal(t, ScopeToday, s.Kind)

	s, err = ParseScope("all")
	require.NoError(t, err)
	assert.Equal(t, ScopeAll, s.Kind)

	_, err = ParseScope("yesterday")
	require.Error(t, err)
}
