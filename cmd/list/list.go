// Package list implements the list command for displaying registered paths.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Erick-Lisboa/hierarchical-path/internal/cmdutil"
	"github.com/Erick-Lisboa/hierarchical-path/internal/pathtree"
)

// Flag variables for the list command.
var (
	listJSON bool
)

// ListCmd is the list command for displaying registered paths.
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered paths",
	Long: "List all paths currently registered in the hierarchical store.\n\n" +
		"Only explicitly registered paths are shown; intermediate directories " +
		"that exist in the tree solely to reach a registered descendant are not. " +
		"Use --json to emit the list as a JSON array.",
	Example: `  # List registered paths
  hierpath list

  # List as JSON
  hierpath list --json`,
	Args:    cobra.NoArgs,
	PreRunE: validateList,
	RunE:    runList,
}

func init() {
	ListCmd.Flags().BoolVar(&listJSON, "json", false,
		"Emit registered paths as a JSON array")
}

func validateList(cmd *cobra.Command, args []string) error {
	// All validation passed - errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	store, err := cmdutil.OpenStore()
	if err != nil {
		return err
	}

	paths := store.ListAll()

	if listJSON {
		if paths == nil {
			paths = []string{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(paths)
	}

	if len(paths) == 0 {
		fmt.Fprintln(out, "No paths registered.")
		fmt.Fprintln(out, "\nUse 'hierpath register <path>' to start tracking a path.")
		return nil
	}

	fmt.Fprintf(out, "Registered paths (%d):\n\n", len(paths))
	fmt.Fprintf(out, "%-50s %-6s %s\n", "PATH", "KIND", "REGISTERED AT")
	fmt.Fprintf(out, "%-50s %-6s %s\n", strings.Repeat("-", 50), strings.Repeat("-", 6), strings.Repeat("-", 20))

	for _, path := range paths {
		printTableRow(out, store, path)
	}

	return nil
}

func printTableRow(out io.Writer, store *pathtree.Store, path string) {
	display := path
	if len(display) > 50 {
		display = "..." + display[len(display)-47:]
	}

	kind := "dir"
	registeredAt := "-"
	if meta, err := store.MetadataOf(path); err == nil {
		if meta.IsFile {
			kind = "file"
		}
		if meta.RegisteredAt != nil {
			registeredAt = meta.RegisteredAt.UTC().Format("2006-01-02 15:04:05")
		}
	}

	fmt.Fprintf(out, "%-50s %-6s %s\n", display, kind, registeredAt)
}
