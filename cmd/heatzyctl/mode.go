package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"heatzyctl/internal/domain"
)

var getModeCmd = &cobra.Command{
	Use:   "get-mode",
	Short: "Print the current mode of a device",
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

		state, err := client.GetDeviceState(cmd.Context(), dev.DID)
		if err != nil {
			return err
		}

		if !state.UpdatedAt.IsZero() {
			logger.Info("last report", "did", dev.DID, "updated_at", state.UpdatedAt)
		}
		fmt.Println(state.Mode)
		return nil
	},
}

var setModeCmd = &cobra.Command{
	Use:   "set-mode <mode>",
	Short: "Command a device into a new mode",
	Long:  "Valid modes: comfort, eco, frost-protection (or frost), stop, comfort-1, comfort-2.",
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(1)(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateSelector(flagDeviceName, flagDeviceID); err != nil {
			return err
		}
		if err := requireToken(); err != nil {
			return err
		}

		mode, err := domain.ParseMode(args[0])
		if err != nil {
			return err
		}

		dev, err := directory.Resolve(cmd.Context(), flagDeviceName, flagDeviceID)
		if err != nil {
			return err
		}

		if err := client.SetMode(cmd.Context(), dev.DID, mode); err != nil {
			return err
		}

		fmt.Printf("Device mode set to: %s\n", mode)
		return nil
	},
}

func init() {
	addSelectorFlags(getModeCmd)
	addSelectorFlags(setModeCmd)
	rootCmd.AddCommand(getModeCmd)
	rootCmd.AddCommand(setModeCmd)
}
