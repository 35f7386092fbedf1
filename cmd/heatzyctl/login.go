package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagUsername string
	flagPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and print an authentication token",
	Long:  "Exchanges credentials for a bearer token. Only the token is written to stdout, so it can be captured: TOKEN=$(heatzyctl login -u ... -p ...)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagUsername == "" || flagPassword == "" {
			return usageError{errors.New("--username and --password are required")}
		}

		auth, err := client.Login(cmd.Context(), flagUsername, flagPassword)
		if err != nil {
			return err
		}

		fmt.Println(auth.Token)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&flagUsername, "username", "u", "", "account username (email)")
	loginCmd.Flags().StringVarP(&flagPassword, "password", "p", "", "account password")

	rootCmd.AddCommand(loginCmd)
}
