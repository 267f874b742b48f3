// Package unregister implements the unregister command for removing paths
// from the store.
package unregister

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Erick-Lisboa/hierarchical-path/internal/cmdutil"
	"github.com/Erick-Lisboa/hierarchical-path/internal/pathtree"
	"github.com/Erick-Lisboa/hierarchical-path/internal/segment"
)

// UnregisterCmd is the unregister command for removing paths from the store.
var UnregisterCmd = &cobra.Command{
	Use:   "unregister <path>...",
	Short: "Remove one or more registered paths from the store",
	Long: "Remove one or more registered paths from the hierarchical store.\n\n" +
		"Only explicitly registered paths can be unregistered; intermediate " +
		"directories that exist in the tree solely to reach a registered " +
		"descendant are pruned automatically once no registered path needs them. " +
		"The path does not need to exist on the filesystem anymore, so paths " +
		"whose files have been deleted can still be unregistered.",
	Example: `  # Stop tracking a path
  hierpath unregister docs/notes.md

  # Stop tracking several paths at once
  hierpath unregister src/main.go src/util.go`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: validateUnregister,
	RunE:    runUnregister,
}

func validateUnregister(cmd *cobra.Command, args []string) error {
	// All validation passed - errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runUnregister(cmd *cobra.Command, args []string) error {
	store, err := cmdutil.OpenStore()
	if err != nil {
		return err
	}

	for _, arg := range args {
		path := cmdutil.CleanArg(arg)

		if err := store.Unregister(path); err != nil {
			// Paths unregistered before the failure stay unregistered.
			if saveErr := cmdutil.SaveStore(store); saveErr != nil {
				return saveErr
			}
			switch {
			case errors.Is(err, pathtree.ErrPathNotRegistered):
				return fmt.Errorf("path is not registered: %s", path)
			case errors.Is(err, segment.ErrInvalidPath):
				return fmt.Errorf("invalid path: %q", arg)
			default:
				return fmt.Errorf("failed to unregister path; %w", err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Unregistered: %s\n", path)
	}

	return cmdutil.SaveStore(store)
}
