package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Erick-Lisboa/hierarchical-path/cmd/info"
	"github.com/Erick-Lisboa/hierarchical-path/cmd/list"
	"github.com/Erick-Lisboa/hierarchical-path/cmd/register"
	"github.com/Erick-Lisboa/hierarchical-path/cmd/unregister"
	"github.com/Erick-Lisboa/hierarchical-path/cmd/version"
	"github.com/Erick-Lisboa/hierarchical-path/internal/config"
	"github.com/Erick-Lisboa/hierarchical-path/internal/logging"
)

// logManager is the global logging manager, created in init() and upgraded after config loads
var logManager *logging.Manager

var hierpathCmd = &cobra.Command{
	Use:   "hierpath",
	Short: "Track explicitly registered filesystem paths in a hierarchical store",
	Long: "Hierpath tracks filesystem paths that have been explicitly registered, " +
		"organizing them into a tree that mirrors directory structure.\n\n" +
		"Each registered path records whether it is a file and when it was registered. " +
		"The tree persists to a single JSON document. Only paths you register are " +
		"tracked; hierpath never walks directories or stores file contents.\n\n",
	PersistentPreRunE: runInitialize,
}

func init() {
	// Bootstrap mode logs text to stderr only until config is available.
	logManager = logging.NewManager()

	hierpathCmd.AddCommand(register.RegisterCmd)
	hierpathCmd.AddCommand(unregister.UnregisterCmd)
	hierpathCmd.AddCommand(list.ListCmd)
	hierpathCmd.AddCommand(info.InfoCmd)
	hierpathCmd.AddCommand(version.VersionCmd)
}

func runInitialize(cmd *cobra.Command, args []string) error {
	logger := logManager.Logger()

	if err := config.Init(); err != nil {
		return err
	}

	logFile := config.GetPath("log_file")
	levelStr := config.GetString("log_level")
	level, ok := logging.ParseLevel(levelStr)
	if !ok {
		level = logging.DefaultLevel
		if levelStr != "" {
			logger.Warn("invalid log level configured, using default", "configured", levelStr, "default", "info")
		}
	}

	if err := logManager.Upgrade(logFile, level); err != nil {
		logger.Warn("failed to enable file logging, continuing with stderr only", "error", err)
		// Don't return error - continue with bootstrap mode
	}

	return nil
}

func Execute() error {
	hierpathCmd.SilenceErrors = true
	hierpathCmd.SilenceUsage = true

	defer func() { _ = logManager.Close() }()

	err := hierpathCmd.Execute()

	if err != nil {
		cmd, _, _ := hierpathCmd.Find(os.Args[1:])
		if cmd == nil {
			cmd = hierpathCmd
		}

		fmt.Printf("Error: %v\n", err)
		if !cmd.SilenceUsage {
			fmt.Printf("\n")
			cmd.SetOut(os.Stdout)
			_ = cmd.Usage()
		}

		return err
	}

	return nil
}
