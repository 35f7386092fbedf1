package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List all devices bound to the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireToken(); err != nil {
			return err
		}

		devices, err := client.ListDevices(cmd.Context())
		if err != nil {
			return err
		}

		for _, d := range devices {
			alias := d.Alias
			if alias == "" {
				alias = "(no name)"
			}
			mark := "✗"
			if d.Online {
				mark = "✓"
			}
			fmt.Printf("%-30s %s %s (%s)\n", alias, d.DID, mark, d.ProductName)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}
