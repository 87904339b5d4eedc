package commands

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/amount"
)

func newSettleCommand() *cobra.Command {
	var cardFlag, accountFlag, amountFlag, dateFlag, memoFlag string

	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Record a credit card payment",
		Long: `Record a credit card payment from a bank account. When --account is
omitted the account used for the card's previous settlement is reused.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := amount.Parse(amountFlag)
			if err != nil {
				return err
			}
			date, err := parseDate(dateFlag)
			if err != nil {
				return err
			}

			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			card, err := resolveCard(s, cardFlag)
			if err != nil {
				return err
			}
			var accountID *uuid.UUID
			if accountFlag != "" {
				a, err := resolveAccount(s, accountFlag)
				if err != nil {
					return err
				}
				accountID = &a.ID
			}

			t, err := s.SettleCard(card.ID, accountID, amt, date, memoFlag)
			if err != nil {
				return err
			}
			acc, _ := s.AccountByID(*t.AccountID)
			cmd.Printf("Settled %s for %s from %s\n", card.Name, amount.Format(t.Amount), acc.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&cardFlag, "card", "", "credit card name or ID (required)")
	_ = cmd.MarkFlagRequired("card")
	cmd.Flags().StringVar(&accountFlag, "account", "", "paying account (default: remembered for the card)")
	cmd.Flags().StringVar(&amountFlag, "amount", "", "payment amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&dateFlag, "date", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&memoFlag, "memo", "", "free-form memo")

	return cmd
}
