// Package register implements the register command for adding paths to the store.
package register

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Erick-Lisboa/hierarchical-path/internal/cmdutil"
	"github.com/Erick-Lisboa/hierarchical-path/internal/pathtree"
	"github.com/Erick-Lisboa/hierarchical-path/internal/segment"
)

// RegisterCmd is the register command for adding paths to the store.
var RegisterCmd = &cobra.Command{
	Use:   "register <path>...",
	Short: "Register one or more paths in the store",
	Long: "Register one or more filesystem paths in the hierarchical store.\n\n" +
		"Each path must exist on the filesystem at the time of registration. " +
		"The path is recorded exactly as given, so relative paths resolve against " +
		"the current working directory. Re-registering a path refreshes its " +
		"registration timestamp.",
	Example: `  # Register a file
  hierpath register docs/notes.md

  # Register several paths at once
  hierpath register src src/main.go ~/projects/demo`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: validateRegister,
	RunE:    runRegister,
}

func validateRegister(cmd *cobra.Command, args []string) error {
	// All validation passed - errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	store, err := cmdutil.OpenStore()
	if err != nil {
		return err
	}

	for _, arg := range args {
		path := cmdutil.CleanArg(arg)

		if err := store.Register(path); err != nil {
			// Paths registered before the failure stay registered.
			if saveErr := cmdutil.SaveStore(store); saveErr != nil {
				return saveErr
			}
			switch {
			case errors.Is(err, pathtree.ErrPathNotFound):
				return fmt.Errorf("path does not exist: %s", path)
			case errors.Is(err, segment.ErrInvalidPath):
				return fmt.Errorf("invalid path: %q", arg)
			default:
				return fmt.Errorf("failed to register path; %w", err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Registered: %s\n", path)
	}

	return cmdutil.SaveStore(store)
}
