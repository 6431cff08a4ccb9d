// Reward commands for the scorekeep CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagRewardDescription string
	flagRewardValue       int64
)

var rewardCmd = &cobra.Command{
	Use:   "reward",
	Short: "Manage rewards and redeem them for points",
}

var rewardAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Create a reward",
	Args:  cobra.ExactArgs(1),
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

		reward, err := s.CreateReward(owner, args[0], flagRewardDescription, flagRewardValue)
		if err != nil {
			return err
		}
		return output(reward, func() {
			fmt.Printf("Created reward #%d %s\n", reward.ID, reward.Name)
		})
	},
}

var rewardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the acting user's active rewards",
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

		rewards, err := s.RewardsForOwner(owner)
		if err != nil {
			return err
		}
		return output(rewards, func() {
			for _, reward := range rewards {
				printReward(reward)
			}
		})
	},
}

var rewardRedeemCmd = &cobra.Command{
	Use:   "redeem ID",
	Short: "Redeem a reward, debiting its value from the balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, id, s, detach, err := taskContext(args)
		if err != nil {
			return err
		}
		defer detach()

		reward, err := s.RedeemReward(owner, id)
		if err != nil {
			return err
		}
		return output(reward, func() {
			fmt.Printf("Redeemed #%d %s for %d pts\n", reward.ID, reward.Name, reward.Value)
		})
	},
}

var rewardDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Soft-delete a reward (restore brings it back; balance is untouched)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, id, s, detach, err := taskContext(args)
		if err != nil {
			return err
		}
		defer detach()

		reward, _, err := s.DeleteReward(owner, id)
		if err != nil {
			return err
		}
		return output(reward, func() {
			fmt.Printf("Deleted reward #%d %s (restore with: scorekeep reward restore %d)\n", reward.ID, reward.Name, reward.ID)
		})
	},
}

var rewardRestoreCmd = &cobra.Command{
	Use:   "restore ID",
	Short: "Restore a soft-deleted reward",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, id, s, detach, err := taskContext(args)
		if err != nil {
			return err
		}
		defer detach()

		reward, err := s.RestoreReward(owner, id)
		if err != nil {
			return err
		}
		return output(reward, func() { printReward(reward) })
	},
}

func init() {
	rewardAddCmd.Flags().StringVar(&flagRewardDescription, "description", "", "reward description")
	rewardAddCmd.Flags().Int64Var(&flagRewardValue, "value", 0, "points debited on redemption")

	rewardCmd.AddCommand(rewardAddCmd)
	rewardCmd.AddCommand(rewardListCmd)
	rewardCmd.AddCommand(rewardRedeemCmd)
	rewardCmd.AddCommand(rewardDeleteCmd)
	rewardCmd.AddCommand(rewardRestoreCmd)
}
