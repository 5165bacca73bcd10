package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage accounts discovered while parsing",
	}
	cmd.AddCommand(accountsListCmd())
	return cmd
}

func accountsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			accounts, err := store.ListAccounts(cmd.Context())
			if err != nil {
				return err
			}
			if len(accounts) == 0 {
				fmt.Println("No accounts found.")
				return nil
			}

			fmt.Printf("%-6s %-30s %-15s\n", "ID", "BANK", "ACCOUNT")
			for _, acct := range accounts {
				fmt.Printf("%-6d %-30s %-15s\n", acct.ID, acct.BankName, acct.AccountNumber)
			}
			return nil
		},
	}
}
