// Stats commands for the scorekeep CLI: ledger history and per-day totals.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var flagStatsSince string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the acting user's per-day balance changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := requireOwnerFlag()
		if err != nil {
			return err
		}
		since, err := parseSince(flagStatsSince)
		if err != nil {
			return err
		}
		s, detach, err := attachService()
		if err != nil {
			return err
		}
		defer detach()

		summaries, err := s.Summarize(owner, since)
		if err != nil {
			return err
		}
		return output(summaries, func() {
			for _, day := range summaries {
				fmt.Printf("%s %+d\n", day.Day.Format("2006-01-02"), day.Total)
			}
		})
	},
}

var statsLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the acting user's full transaction log",
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

		transactions, err := s.Transactions(owner)
		if err != nil {
			return err
		}
		return output(transactions, func() {
			for _, tr := range transactions {
				fmt.Printf("#%d %s %+d\n", tr.ID, tr.Day.Format("2006-01-02"), tr.Amount)
			}
		})
	},
}

func init() {
	statsCmd.Flags().StringVar(&flagStatsSince, "since", "", "earliest day to include (YYYY-MM-DD)")
	statsCmd.AddCommand(statsLogCmd)
}

// parseSince parses the --since day filter; empty means the whole history.
func parseSince(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	since, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --since %q, want YYYY-MM-DD: %w", value, err)
	}
	return since, nil
}
