package commands

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/amount"
)

func newTransferCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Move money between accounts",
	}

	var amountFlag, dateFlag, memoFlag, fromFlag, toFlag string
	addTransferFlags := func(c *cobra.Command) {
		c.Flags().StringVar(&amountFlag, "amount", "", "amount (required)")
		_ = c.MarkFlagRequired("amount")
		c.Flags().StringVar(&dateFlag, "date", "", "date as YYYY-MM-DD (default today)")
		c.Flags().StringVar(&memoFlag, "memo", "", "free-form memo")
		c.Flags().StringVar(&fromFlag, "from", "", "source account name or ID (required)")
		_ = c.MarkFlagRequired("from")
		c.Flags().StringVar(&toFlag, "to", "", "destination account name or ID (required)")
		_ = c.MarkFlagRequired("to")
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Record a transfer",
		Args:  cobra.NoArgs,
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

			from, err := resolveAccount(s, fromFlag)
			if err != nil {
				return err
			}
			to, err := resolveAccount(s, toFlag)
			if err != nil {
				return err
			}

			p, err := s.SaveTransfer(date, amt, memoFlag, from.ID, to.ID)
			if err != nil {
				return err
			}
			cmd.Printf("%s ⇄ %s: %s → %s (pair %s)\n",
				date.Format(dateLayout), amount.Format(amt), from.Name, to.Name, *p.Out.PairID)
			return nil
		},
	}
	addTransferFlags(add)

	edit := &cobra.Command{
		Use:   "edit <pair-id>",
		Short: "Replace a transfer pair with new values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairID, err := uuid.Parse(args[0])
			if err != nil {
				return err
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

			from, err := resolveAccount(s, fromFlag)
			if err != nil {
				return err
			}
			to, err := resolveAccount(s, toFlag)
			if err != nil {
				return err
			}

			p, err := s.EditTransfer(pairID, date, amt, memoFlag, from.ID, to.ID)
			if err != nil {
				return err
			}
			cmd.Printf("Replaced pair %s with %s\n", pairID, *p.Out.PairID)
			return nil
		},
	}
	addTransferFlags(edit)

	rm := &cobra.Command{
		Use:   "rm <pair-id>",
		Short: "Delete a transfer pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairID, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}

			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			for _, t := range s.Transactions() {
				if t.PairID != nil && *t.PairID == pairID {
					s.DeleteTransaction(t.ID)
					cmd.Printf("Deleted pair %s\n", pairID)
					return nil
				}
			}
			cmd.Printf("No pair %s\n", pairID)
			return nil
		},
	}

	cmd.AddCommand(add, edit, rm)
	return cmd
}
