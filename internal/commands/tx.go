package commands

import (
	"errors"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/amount"
	"github.com/bankbook-dev/bankbook/internal/model"
)

func newTxCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Record and delete transactions",
	}

	var (
		kindFlag, amountFlag, dateFlag, memoFlag string
		accountFlag, cardFlag, categoryFlag      string
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := model.ParseKind(kindFlag)
			if err != nil {
				return err
			}
			if kind == model.KindTransfer {
				return errors.New("use \"bankbook transfer add\" for transfers")
			}
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

			t := model.Transaction{
				ID:     uuid.New(),
				Date:   date,
				Amount: amt,
				Memo:   memoFlag,
				Kind:   kind,
			}
			if accountFlag != "" {
				a, err := resolveAccount(s, accountFlag)
				if err != nil {
					return err
				}
				t.AccountID = &a.ID
			}
			if cardFlag != "" {
				c, err := resolveCard(s, cardFlag)
				if err != nil {
					return err
				}
				t.CardID = &c.ID
			}
			if categoryFlag != "" {
				c, err := resolveCategory(s, categoryFlag)
				if err != nil {
					return err
				}
				t.CategoryID = &c.ID
			}

			if err := s.UpsertTransaction(t); err != nil {
				return err
			}
			cmd.Printf("%s %s %s %s\n", t.Date.Format(dateLayout), kind.Info().Symbol, amount.Format(t.Amount), t.Memo)
			return nil
		},
	}
	add.Flags().StringVar(&kindFlag, "kind", "expense", "expense, income, cardUsage, cardPayment, carryOver or balance")
	add.Flags().StringVar(&amountFlag, "amount", "", "amount, e.g. 1,200 or 1万2000 (required)")
	_ = add.MarkFlagRequired("amount")
	add.Flags().StringVar(&dateFlag, "date", "", "date as YYYY-MM-DD (default today)")
	add.Flags().StringVar(&memoFlag, "memo", "", "free-form memo")
	add.Flags().StringVar(&accountFlag, "account", "", "account name or ID")
	add.Flags().StringVar(&cardFlag, "card", "", "credit card name or ID")
	add.Flags().StringVar(&categoryFlag, "category", "", "category name or ID")

	rm := &cobra.Command{
		Use:   "rm <id>...",
		Short: "Delete transactions (transfer pairs go together)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make(map[uuid.UUID]bool, len(args))
			for _, arg := range args {
				id, err := uuid.Parse(arg)
				if err != nil {
					return err
				}
				ids[id] = true
			}

			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			before := len(s.Transactions())
			s.DeleteTransactions(ids)
			cmd.Printf("Deleted %d transaction(s)\n", before-len(s.Transactions()))
			return nil
		},
	}

	cmd.AddCommand(add, rm)
	return cmd
}
