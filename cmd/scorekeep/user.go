// User commands for the scorekeep CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagPasswordHash string

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Create a user with zero balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, detach, err := attachService()
		if err != nil {
			return err
		}
		defer detach()

		user, err := s.CreateUser(args[0], flagPasswordHash)
		if err != nil {
			return err
		}
		return output(user, func() {
			fmt.Printf("Created user #%d %s\n", user.ID, user.Name)
		})
	},
}

var userShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the acting user and current balance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := requireOwnerFlag()
		if err != nil {
			return err
		}
		s, detach, err := attachService()
		if err != nil {
			return err
		}
		defer detach()

		user, err := s.GetUser(owner)
		if err != nil {
			return err
		}
		return output(user, func() {
			fmt.Printf("#%d %s: balance %d\n", user.ID, user.Name, user.Balance)
		})
	},
}

func init() {
	userAddCmd.Flags().StringVar(&flagPasswordHash, "password-hash", "", "pre-hashed password (opaque to scorekeep)")
	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userShowCmd)
}
