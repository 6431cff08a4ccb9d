// Task commands for the scorekeep CLI. Completion-state changes go through
// the balance mutator; delete/restore go through the soft-delete manager.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagTaskDescription string
	flagTaskDue         string
	flagTaskValue       int64
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks and their completion state",
}

var taskAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Create a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := requireOwnerFlag()
		if err != nil {
			return err
		}
		due, err := parseDue(flagTaskDue)
		if err != nil {
			return err
		}
		s, detach, err := attachService()
		if err != nil {
			return err
		}
		defer detach()

		task, err := s.CreateTask(owner, args[0], flagTaskDescription, due, flagTaskValue)
		if err != nil {
			return err
		}
		return output(task, func() {
			fmt.Printf("Created task #%d %s\n", task.ID, task.Name)
		})
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the acting user's active tasks",
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

		tasks, err := s.TasksForOwner(owner)
		if err != nil {
			return err
		}
		return output(tasks, func() {
			for _, task := range tasks {
				printTask(task)
			}
		})
	},
}

var taskCompleteCmd = &cobra.Command{
	Use:   "complete ID",
	Short: "Mark a task completed and credit its value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, id, s, detach, err := taskContext(args)
		if err != nil {
			return err
		}
		defer detach()

		task, err := s.CompleteTask(owner, id)
		if err != nil {
			return err
		}
		return output(task, func() { printTask(task) })
	},
}

var taskUncompleteCmd = &cobra.Command{
	Use:   "uncomplete ID",
	Short: "Mark a task uncompleted and reverse its credit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, id, s, detach, err := taskContext(args)
		if err != nil {
			return err
		}
		defer detach()

		task, err := s.UncompleteTask(owner, id)
		if err != nil {
			return err
		}
		return output(task, func() { printTask(task) })
	},
}

var taskRefreshCmd = &cobra.Command{
	Use:   "refresh ID",
	Short: "Reset a task to uncompleted without refunding earned points",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, id, s, detach, err := taskContext(args)
		if err != nil {
			return err
		}
		defer detach()

		task, err := s.RefreshTask(owner, id)
		if err != nil {
			return err
		}
		return output(task, func() { printTask(task) })
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Soft-delete a task (restore brings it back; balance is untouched)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, id, s, detach, err := taskContext(args)
		if err != nil {
			return err
		}
		defer detach()

		task, _, err := s.DeleteTask(owner, id)
		if err != nil {
			return err
		}
		return output(task, func() {
			fmt.Printf("Deleted task #%d %s (restore with: scorekeep task restore %d)\n", task.ID, task.Name, task.ID)
		})
	},
}

var taskRestoreCmd = &cobra.Command{
	Use:   "restore ID",
	Short: "Restore a soft-deleted task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, id, s, detach, err := taskContext(args)
		if err != nil {
			return err
		}
		defer detach()

		task, err := s.RestoreTask(owner, id)
		if err != nil {
			return err
		}
		return output(task, func() { printTask(task) })
	},
}

func init() {
	taskAddCmd.Flags().StringVar(&flagTaskDescription, "description", "", "task description")
	taskAddCmd.Flags().StringVar(&flagTaskDue, "due", "", "due date (YYYY-MM-DD, default today)")
	taskAddCmd.Flags().Int64Var(&flagTaskValue, "value", 0, "points earned on completion")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskCompleteCmd)
	taskCmd.AddCommand(taskUncompleteCmd)
	taskCmd.AddCommand(taskRefreshCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	taskCmd.AddCommand(taskRestoreCmd)
}

// parseDue parses a YYYY-MM-DD due date, defaulting to today.
func parseDue(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	due, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --due %q, want YYYY-MM-DD: %w", value, err)
	}
	return due, nil
}

// parseID parses a positional numeric id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id must be a number, got %q: %w", arg, err)
	}
	return id, nil
}
