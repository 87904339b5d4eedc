package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/amount"
	"github.com/bankbook-dev/bankbook/internal/ledger"
	"github.com/bankbook-dev/bankbook/internal/model"
)

func newUsageCommand() *cobra.Command {
	var cardFlag string

	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Report outstanding credit card usage",
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

			txs := scope.Filter(s.Transactions(), time.Now())

			cards := s.Cards()
			if cardFlag != "" {
				c, err := resolveCard(s, cardFlag)
				if err != nil {
					return err
				}
				cards = []model.Category{c}
			}

			// Usage rows grouped per card, newest first within a group.
			var total float64
			for _, card := range cards {
				sub := ledger.CreditUsageTotal(txs, &card.ID)
				total += sub
				cmd.Printf("%s  %s\n", card.Name, amount.Format(sub))
				for _, t := range txs {
					if t.Kind != model.KindCardUsage || t.CardID == nil || *t.CardID != card.ID {
						continue
					}
					cmd.Printf("  %s  %12s  %s\n", t.Date.Format(dateLayout), amount.Format(t.Amount), t.Memo)
				}
			}
			if cardFlag == "" {
				cmd.Printf("total: %s\n", amount.Format(total))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cardFlag, "card", "", "restrict to one card")
	addScopeFlags(cmd)
	return cmd
}
