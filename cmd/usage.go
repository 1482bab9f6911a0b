package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show today's analysis quota",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initApp(cmd.Context(), "store")
		if err != nil {
			return err
		}
		defer env.Close()

		quota := env.Ledger.Check(cmd.Context())
		fmt.Printf("%d of %d analyses remaining today\n", quota.Remaining, quota.Limit)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(usageCmd)
}
