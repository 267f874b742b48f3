package register

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/Erick-Lisboa/hierarchical-path/internal/cmdutil"
	"github.com/Erick-Lisboa/hierarchical-path/internal/testutil"
)

func TestRegisterCmd_Basic(t *testing.T) {
	env := testutil.NewTestEnv(t)
	testDir := env.CreateTestDir("project")
	testFile := env.CreateTestFile(testDir, "notes.md", "hello")

	cmd := createTestCommand()
	cmd.SetArgs([]string{testFile})

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("register command failed: %v", err)
	}

	if !strings.Contains(stdout.String(), "Registered: "+testFile) {
		t.Errorf("expected confirmation output, got: %s", stdout.String())
	}

	// Verify the path landed in the persisted store
	store, err := cmdutil.OpenStore()
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if !store.Contains(testFile) {
		t.Error("expected path to be registered in the store")
	}

	meta, err := store.MetadataOf(testFile)
	if err != nil {
		t.Fatalf("failed to get metadata: %v", err)
	}
	if !meta.IsFile {
		t.Error("expected isFile to be true for a regular file")
	}
}

func TestRegisterCmd_MultiplePaths(t *testing.T) {
	env := testutil.NewTestEnv(t)
	testDir := env.CreateTestDir("project")
	fileA := env.CreateTestFile(testDir, "a.txt", "a")
	fileB := env.CreateTestFile(testDir, "b.txt", "b")

	cmd := createTestCommand()
	cmd.SetArgs([]string{fileA, fileB})

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("register command failed: %v", err)
	}

	store, _ := cmdutil.OpenStore()
	if len(store.ListAll()) != 2 {
		t.Errorf("expected 2 registered paths, got %d", len(store.ListAll()))
	}
}

func TestRegisterCmd_MissingPath(t *testing.T) {
	env := testutil.NewTestEnv(t)
	testDir := env.CreateTestDir("project")

	cmd := createTestCommand()
	cmd.SetArgs([]string{testDir + "/absent.txt"})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for a path that does not exist")
	}

	store, _ := cmdutil.OpenStore()
	if len(store.ListAll()) != 0 {
		t.Error("expected no registered paths after failed register")
	}
}

func TestRegisterCmd_KeepsEarlierSuccesses(t *testing.T) {
	env := testutil.NewTestEnv(t)
	testDir := env.CreateTestDir("project")
	fileA := env.CreateTestFile(testDir, "a.txt", "a")

	cmd := createTestCommand()
	cmd.SetArgs([]string{fileA, testDir + "/absent.txt"})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for the missing path")
	}

	// The successful registration before the failure is persisted.
	store, _ := cmdutil.OpenStore()
	if !store.Contains(fileA) {
		t.Error("expected the first path to stay registered")
	}
}

// Helper functions

func createTestCommand() *cobra.Command {
	return &cobra.Command{
		Use:     RegisterCmd.Use,
		Short:   RegisterCmd.Short,
		Long:    RegisterCmd.Long,
		Example: RegisterCmd.Example,
		Args:    RegisterCmd.Args,
		PreRunE: RegisterCmd.PreRunE,
		RunE:    RegisterCmd.RunE,
	}
}
