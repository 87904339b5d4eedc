package commands

import (
	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/store"
)

func newAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage bank accounts",
	}

	var number, branchName, branchCode string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a bank account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			a := s.AddAccount(args[0], number, branchName, branchCode)
			cmd.Printf("Added account %s (%s)\n", a.Name, a.ID)
			return nil
		},
	}
	add.Flags().StringVar(&number, "number", "", "account number")
	add.Flags().StringVar(&branchName, "branch", "", "branch name")
	add.Flags().StringVar(&branchCode, "branch-code", "", "branch code")

	list := &cobra.Command{
		Use:   "list",
		Short: "List bank accounts with balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			renderAccounts(cmd, s)
			return nil
		},
	}

	rm := &cobra.Command{
		Use:   "rm <name-or-id>",
		Short: "Remove a bank account (denied while transactions reference it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			a, err := resolveAccount(s, args[0])
			if err != nil {
				return err
			}
			if err := s.RemoveAccount(a.ID); err != nil {
				return err
			}
			cmd.Printf("Removed account %s\n", a.Name)
			return nil
		},
	}

	cmd.AddCommand(add, list, rm)
	return cmd
}

func newCategoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage spending categories",
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			c := s.AddCategory(args[0])
			cmd.Printf("Added category %s (%s)\n", c.Name, c.ID)
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			for _, c := range s.Categories() {
				cmd.Printf("%s  %s\n", c.ID, c.Name)
			}
			return nil
		},
	}

	rm := &cobra.Command{
		Use:   "rm <name-or-id>",
		Short: "Remove a category (references in transactions are cleared)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			c, err := resolveCategory(s, args[0])
			if err != nil {
				return err
			}
			s.RemoveCategory(c.ID)
			cmd.Printf("Removed category %s\n", c.Name)
			return nil
		},
	}

	cmd.AddCommand(add, list, rm)
	return cmd
}

func newCardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage credit cards",
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a credit card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			c := s.AddCard(args[0])
			cmd.Printf("Added card %s (%s)\n", c.Name, c.ID)
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List credit cards with their settlement accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			for _, c := range s.Cards() {
				settle := "-"
				if accID, ok := s.DefaultSettlementAccountID(c.ID); ok {
					if a, found := s.AccountByID(accID); found {
						settle = a.Name
					}
				}
				cmd.Printf("%s  %s  settles from: %s\n", c.ID, c.Name, settle)
			}
			return nil
		},
	}

	rm := &cobra.Command{
		Use:   "rm <name-or-id>",
		Short: "Remove a credit card (references in transactions are cleared)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			c, err := resolveCard(s, args[0])
			if err != nil {
				return err
			}
			s.RemoveCard(c.ID)
			cmd.Printf("Removed card %s\n", c.Name)
			return nil
		},
	}

	cmd.AddCommand(add, list, rm)
	return cmd
}

func renderAccounts(cmd *cobra.Command, s *store.Store) {
	txs := s.Transactions()
	for _, a := range s.Accounts() {
		renderAccountLine(cmd, s, a.ID, txs)
	}
}
