// Package info implements the info command for inspecting tree nodes.
package info

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Erick-Lisboa/hierarchical-path/internal/cmdutil"
	"github.com/Erick-Lisboa/hierarchical-path/internal/pathtree"
	"github.com/Erick-Lisboa/hierarchical-path/internal/segment"
)

// InfoCmd is the info command for inspecting the metadata of a tree node.
var InfoCmd = &cobra.Command{
	Use:   "info <path>",
	Short: "Show the stored metadata for a path",
	Long: "Show the metadata record of a path in the hierarchical store.\n\n" +
		"Unlike list, info also works for structural nodes - intermediate " +
		"directories that are in the tree only because a registered path " +
		"passes through them.",
	Example: `  # Inspect a registered path
  hierpath info docs/notes.md

  # Inspect a structural ancestor
  hierpath info docs`,
	Args:    cobra.ExactArgs(1),
	PreRunE: validateInfo,
	RunE:    runInfo,
}

func validateInfo(cmd *cobra.Command, args []string) error {
	// All validation passed - errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	path := cmdutil.CleanArg(args[0])

	store, err := cmdutil.OpenStore()
	if err != nil {
		return err
	}

	meta, err := store.MetadataOf(path)
	if err != nil {
		switch {
		case errors.Is(err, pathtree.ErrPathNotFound):
			return fmt.Errorf("path is not in the store: %s", path)
		case errors.Is(err, segment.ErrInvalidPath):
			return fmt.Errorf("invalid path: %q", args[0])
		default:
			return fmt.Errorf("failed to look up path; %w", err)
		}
	}

	kind := "directory"
	if meta.IsFile {
		kind = "file"
	}

	fmt.Fprintf(out, "Path:          %s\n", path)
	fmt.Fprintf(out, "Registered:    %t\n", meta.Registered)
	fmt.Fprintf(out, "Kind:          %s\n", kind)
	if meta.RegisteredAt != nil {
		fmt.Fprintf(out, "Registered At: %s\n", meta.RegisteredAt.UTC().Format("2006-01-02T15:04:05Z"))
	} else {
		fmt.Fprintf(out, "Registered At: -\n")
	}

	return nil
}
