// Init command for the scorekeep CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the scorekeep database",
	Long:  "Create the data directory and database schema so other commands can run.",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, detach, err := attachService()
		if err != nil {
			return err
		}
		defer detach()

		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}
		fmt.Printf("Initialized scorekeep database in %s\n", dataDir)
		return nil
	},
}
