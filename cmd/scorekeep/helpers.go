// Shared helpers for scorekeep CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/scorekeep/scorekeep/internal/sqlite"
	"github.com/scorekeep/scorekeep/pkg/service"
	"github.com/scorekeep/scorekeep/pkg/types"
)

// errOwnerRequired is raised when a command needs --owner and none was set.
var errOwnerRequired = fmt.Errorf("--owner is required: %w", types.ErrInvalidInput)

// attachService resolves the data directory, attaches a SQLite backend, and
// wraps it in a Service. The caller must defer detach().
func attachService() (*service.Service, func(), error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := sqlite.NewBackend()
	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}
	if err := backend.Attach(cfg); err != nil {
		return nil, nil, fmt.Errorf("attach backend: %w", err)
	}

	detach := func() { backend.Detach() }
	return service.New(backend), detach, nil
}

// taskContext gathers the boilerplate shared by id-addressed commands: the
// acting owner, the parsed positional id, and an attached service.
func taskContext(args []string) (int64, int64, *service.Service, func(), error) {
	owner, err := requireOwnerFlag()
	if err != nil {
		return 0, 0, nil, nil, err
	}
	id, err := parseID(args[0])
	if err != nil {
		return 0, 0, nil, nil, err
	}
	s, detach, err := attachService()
	if err != nil {
		return 0, 0, nil, nil, err
	}
	return owner, id, s, detach, nil
}

// requireOwnerFlag returns the acting owner id or an error when unset.
func requireOwnerFlag() (int64, error) {
	if flagOwner == 0 {
		return 0, errOwnerRequired
	}
	return flagOwner, nil
}

// output prints v as indented JSON when --json is set, otherwise using the
// provided plain-text printer.
func output(v any, plain func()) error {
	if !flagJSON {
		plain()
		return nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}

// printTask renders one task as a plain-text line.
func printTask(task *types.Task) {
	status := " "
	if task.Completed {
		status = "x"
	}
	fmt.Printf("[%s] #%d %s (%d pts, due %s)\n", status, task.ID, task.Name, task.Value, task.Due.Format("2006-01-02"))
}

// printReward renders one reward as a plain-text line.
func printReward(reward *types.Reward) {
	fmt.Printf("#%d %s (%d pts, redeemed %dx)\n", reward.ID, reward.Name, reward.Value, reward.Completions)
}
