package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the default rooms that are not present yet",
	RunE: func(cmd *cobra.Command, args []string) error {
		// openStore already seeds; report what is there afterwards.
		db, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		var n int
		if err := db.GetContext(cmd.Context(), &n, "SELECT count(1) FROM rooms"); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d rooms available\n", n)
		return nil
	},
}
