package ledger

import (
	"fmt"
	"time"

	"github.com/bankbook-dev/bankbook/internal/model"
)

// ScopeKind selects a date range shape.
type ScopeKind int

const (
	ScopeAll ScopeKind = iota
	ScopeToday
	ScopeThisMonth
	ScopeMonth // explicit year/month
)

// Scope is a calendar filter over transaction dates. Ranges are half-open
// [start, end) at day granularity in the local calendar; month ends are
// computed by adding one calendar month to the first of the month, so
// month length and DST shifts are handled by the time package.
type Scope struct {
	Kind  ScopeKind
	Year  int
	Month int
}

// All matches every transaction.
func All() Scope { return Scope{Kind: ScopeAll} }

// Today matches the current local day.
func Today() Scope { return Scope{Kind: ScopeToday} }

// ThisMonth matches the current local calendar month.
func ThisMonth() Scope { return Scope{Kind: ScopeThisMonth} }

// Month matches an explicit calendar month. Out-of-range months are
// clamped to 1..12.
func Month(year, month int) Scope { return Scope{Kind: ScopeMonth, Year: year, Month: month} }

// ParseScope reads a CLI scope word.
func ParseScope(s string) (Scope, error) {
	switch s {
	case "today":
		return Today(), nil
	case "month", "thisMonth", "this-month":
		return ThisMonth(), nil
	case "all", "":
		return All(), nil
	default:
		return Scope{}, fmt.Errorf("unknown scope %q (want today, month or all)", s)
	}
}

// Bounds returns the half-open range for the scope relative to now.
// bounded is false for ScopeAll.
func (s Scope) Bounds(now time.Time) (start, end time.Time, bounded bool) {
	loc := now.Location()
	switch s.Kind {
	case ScopeToday:
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 0, 1), true
	case ScopeThisMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, 0), true
	case ScopeMonth:
		m := s.Month
		if m < 1 {
			m = 1
		} else if m > 12 {
			m = 12
		}
		start = time.Date(s.Year, time.Month(m), 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, 0), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// Filter returns the transactions whose date falls inside the scope.
func (s Scope) Filter(txs []model.Transaction, now time.Time) []model.Transaction {
	start, end, bounded := s.Bounds(now)
	if !bounded {
		return txs
	}
	var out []model.Transaction
	for _, t := range txs {
		if !t.Date.Before(start) && t.Date.Before(end) {
			out = append(out, t)
		}
	}
	return out
}
