package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagDeviceName string
	flagDeviceID   string
)

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Show information about one device",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateSelector(flagDeviceName, flagDeviceID); err != nil {
			return err
		}
		if err := requireToken(); err != nil {
			return err
		}

		dev, err := directory.Resolve(cmd.Context(), flagDeviceName, flagDeviceID)
		if err != nil {
			return err
		}

		if dev.Alias != "" {
			fmt.Printf("Name:    %s\n", dev.Alias)
		}
		fmt.Printf("ID:      %s\n", dev.DID)
		fmt.Printf("Product: %s\n", dev.ProductName)
		fmt.Printf("MAC:     %s\n", dev.MAC)
		online := "No"
		if dev.Online {
			online = "Yes"
		}
		fmt.Printf("Online:  %s\n", online)
		return nil
	},
}

// addSelectorFlags wires the mutually exclusive --name/--id pair onto a
// device-addressing subcommand. Validation happens in validateSelector, not
// via cobra flag groups, so violations exit with the usage code.
func addSelectorFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDeviceName, "name", "", "device name (alias)")
	cmd.Flags().StringVar(&flagDeviceID, "id", "", "device ID")
}

// validateSelector enforces that exactly one of --name/--id is set.
func validateSelector(name, id string) error {
	switch {
	case name != "" && id != "":
		return usageError{errors.New("--name and --id are mutually exclusive")}
	case name == "" && id == "":
		return usageError{errors.New("one of --name or --id is required")}
	default:
		return nil
	}
}

func init() {
	addSelectorFlags(deviceCmd)
	rootCmd.AddCommand(deviceCmd)
}
