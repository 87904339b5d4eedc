package ledger

import (
	"strings"

	"github.com/google/uuid"

	"github.com/bankbook-dev/bankbook/internal/model"
)

// Resolver looks up entity names for search matching. The store satisfies
// this; tests supply small fakes.
type Resolver interface {
	AccountByID(id uuid.UUID) (model.Account, bool)
	// CategoryByID resolves both categories and credit cards.
	CategoryByID(id uuid.UUID) (model.Category, bool)
}

// kindKeywords are the Japanese/English aliases a kind matches in search.
var kindKeywords = map[model.Kind][]string{
	model.KindIncome:      {"収入", "入金", "income", "+"},
	model.KindExpense:     {"支出", "出金", "expense", "-"},
	model.KindTransfer:    {"資金移動", "振替", "transfer", "移動"},
	model.KindCardUsage:   {"クレジット利用", "クレジット", "カード", "card", "credit"},
	model.KindCardPayment: {"クレジット決済", "クレジット", "カード", "credit"},
	model.KindCarryOver:   {"繰越", "繰り越し", "carryover"},
	model.KindBalance:     {"口座残高", "残高", "balance", "口座"},
}

// searchNorm folds full-width ASCII to half-width and lowercases, so
// "ＡＢＣ１２３" matches "abc123". Ideographic space becomes a plain
// space for tokenizing.
func searchNorm(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 0xFF01 && r <= 0xFF5E:
			b.WriteRune(r - 0xFEE0)
		case r == '　':
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return strings.ToLower(b.String())
}

func fieldContains(field, token string) bool {
	f := searchNorm(field)
	return f != "" && strings.Contains(f, token)
}

// Search filters transactions by a free-text query. The query is split on
// whitespace (half- or full-width) into tokens that must all match (AND)
// against the memo, kind aliases, account name/number/branch fields, and
// category/card names.
func Search(txs []model.Transaction, query string, r Resolver) []model.Transaction {
	q := strings.TrimSpace(searchNorm(query))
	if q == "" {
		return txs
	}
	tokens := strings.Fields(q)

	var out []model.Transaction
	for _, t := range txs {
		all := true
		for _, tok := range tokens {
			if !matches(t, tok, r) {
				all = false
				break
			}
		}
		if all {
			out = append(out, t)
		}
	}
	return out
}

func matches(t model.Transaction, token string, r Resolver) bool {
	for _, kw := range kindKeywords[t.Kind] {
		n := searchNorm(kw)
		if n == token || strings.Contains(n, token) || strings.Contains(token, n) {
			return true
		}
	}

	if fieldContains(t.Memo, token) {
		return true
	}
	for _, ref := range []*uuid.UUID{t.CategoryID, t.CardID} {
		if ref == nil {
			continue
		}
		if c, ok := r.CategoryByID(*ref); ok && fieldContains(c.Name, token) {
			return true
		}
	}
	for _, ref := range []*uuid.UUID{t.AccountID, t.FromAccountID, t.ToAccountID} {
		if ref == nil {
			continue
		}
		a, ok := r.AccountByID(*ref)
		if !ok {
			continue
		}
		if fieldContains(a.Name, token) || fieldContains(a.Number, token) ||
			fieldContains(a.BranchName, token) || fieldContains(a.BranchCode, token) {
			return true
		}
	}
	return false
}
