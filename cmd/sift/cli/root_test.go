package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	expected := []string{"search", "shell", "serve"}
	for _, name := range expected {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommandPersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "data"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected persistent flag %q not found", name)
		}
	}
}

// newTestCommand builds a standalone command carrying the same --config/
// --data flags root.go registers as persistent flags, isolated from the
// real rootCmd so tests can't leak Changed-state into each other or into
// production command instances.
func newTestCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringP("config", "c", "", "config file (default: none)")
	cmd.Flags().StringP("data", "d", "./data", "directory of *.txt documents to index")
	return cmd
}

func TestDataDirPrefersExplicitFlag(t *testing.T) {
	cmd := newTestCommand()
	if err := cmd.Flags().Set("data", "/tmp/explicit"); err != nil {
		t.Fatalf("setting data flag: %v", err)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if got := dataDir(cmd, cfg); got != "/tmp/explicit" {
		t.Errorf("dataDir = %q, want /tmp/explicit", got)
	}
}

func TestDataDirFallsBackToConfigWhenFlagUnset(t *testing.T) {
	cmd := newTestCommand()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if got := dataDir(cmd, cfg); got != cfg.DataDir {
		t.Errorf("dataDir = %q, want cfg.DataDir = %q", got, cfg.DataDir)
	}
}
