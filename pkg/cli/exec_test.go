package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/mockkit/mockkit/pkg/config"
)

// executeCommand runs the root command with args, capturing stdout.
// Flag state is reset afterwards so tests stay independent.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	defer resetFlags()

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), err
}

func resetFlags() {
	jsonOutput = false
	logLevel = config.DefaultLogLevel
	logFormat = config.DefaultLogFormat
	for _, name := range []string{"json", "log-level", "log-format"} {
		if f := rootCmd.PersistentFlags().Lookup(name); f != nil {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	for _, name := range []string{"strictness", "mock-maker", "serializable", "verbose-logging", "recorder-capacity", "global", "force"} {
		if f := initCmd.Flags().Lookup(name); f != nil {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
}

// isolateConfig points config discovery at empty temp directories.
func isolateConfig(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir+"/xdg")
	chdir(t, tmpDir)
	return tmpDir
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWd); err != nil {
			t.Errorf("failed to restore working directory: %v", err)
		}
	})
}
