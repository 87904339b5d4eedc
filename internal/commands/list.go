package commands

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/amount"
	"github.com/bankbook-dev/bankbook/internal/ledger"
	"github.com/bankbook-dev/bankbook/internal/model"
	"github.com/bankbook-dev/bankbook/internal/store"
)

func newListCommand() *cobra.Command {
	var accountFlag, searchFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := scopeFromFlags(cmd)
			if err != nil {
				return err
			}

			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			txs := s.Transactions()
			var viewpoint *uuid.UUID
			if accountFlag != "" {
				a, err := resolveAccount(s, accountFlag)
				if err != nil {
					return err
				}
				viewpoint = &a.ID
				txs = ledger.DedupePairs(ledger.ForAccount(txs, a.ID), a.ID)
			}
			txs = scope.Filter(txs, time.Now())
			if searchFlag != "" {
				txs = ledger.Search(txs, searchFlag, s)
			}

			for _, t := range txs {
				renderTransaction(cmd, s, t, viewpoint)
			}
			if viewpoint != nil {
				cmd.Printf("balance: %s\n", amount.Format(ledger.AccountTotal(txs, *viewpoint)))
			} else {
				cmd.Printf("total: %s\n", amount.Format(ledger.GlobalTotal(txs)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&accountFlag, "account", "", "restrict to one account's view")
	cmd.Flags().StringVar(&searchFlag, "search", "", "filter by memo, kind, account, category or card text")
	addScopeFlags(cmd)
	return cmd
}

// renderTransaction prints one row: date, kind symbol, amount as seen
// from the viewpoint account (signed) or as stored, then memo and the
// names behind the references.
func renderTransaction(cmd *cobra.Command, s *store.Store, t model.Transaction, viewpoint *uuid.UUID) {
	amt := amount.Format(t.Amount)
	if viewpoint != nil {
		amt = amount.Format(ledger.AccountTotal([]model.Transaction{t}, *viewpoint))
	}

	label := ""
	switch {
	case t.Kind == model.KindTransfer && t.FromAccountID != nil && t.ToAccountID != nil:
		from, to := "?", "?"
		if a, ok := s.AccountByID(*t.FromAccountID); ok {
			from = a.Name
		}
		if a, ok := s.AccountByID(*t.ToAccountID); ok {
			to = a.Name
		}
		label = from + " → " + to
	case t.CardID != nil:
		if c, ok := s.CategoryByID(*t.CardID); ok {
			label = c.Name
		}
	case t.AccountID != nil:
		if a, ok := s.AccountByID(*t.AccountID); ok {
			label = a.Name
		}
	}
	if t.CategoryID != nil {
		if c, ok := s.CategoryByID(*t.CategoryID); ok {
			label += " [" + c.Name + "]"
		}
	}

	cmd.Printf("%s  %s %-11s %12s  %s  %s\n",
		t.Date.Format(dateLayout), t.Kind.Info().Symbol, t.Kind, amt, label, t.Memo)
}

func renderAccountLine(cmd *cobra.Command, s *store.Store, accountID uuid.UUID, txs []model.Transaction) {
	a, ok := s.AccountByID(accountID)
	if !ok {
		return
	}
	view := ledger.DedupePairs(ledger.ForAccount(txs, a.ID), a.ID)
	cmd.Printf("%s  %-20s %12s\n", a.ID, a.Name, amount.Format(ledger.AccountTotal(view, a.ID)))
}
