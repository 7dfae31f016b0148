package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary builds the mockkit binary once for all testscript tests.
func buildBinary(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		binaryPath = filepath.Join(os.TempDir(), "mockkit_testscript_bin")
		// Build the binary
		buildCmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/mockkit")
		if out, err := buildCmd.CombinedOutput(); err != nil {
			buildErr = err
			t.Logf("Failed to build CLI: %v\n%s", err, out)
		}
	})
	if buildErr != nil {
		t.Fatal(buildErr)
	}
	return binaryPath
}

func TestCLI(t *testing.T) {
	// Build the mockkit binary we will be invoking.
	bin := buildBinary(t)

	// Run testscript against all .txt files in testdata/. Each script
	// runs in its own fresh work directory with a scrubbed HOME, so
	// config discovery only ever sees files the script itself creates.
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
		Setup: func(env *testscript.Env) error {
			binDir := filepath.Dir(bin)
			env.Setenv("PATH", binDir+string(os.PathListSeparator)+env.Getenv("PATH"))
			env.Setenv("MOCKKIT_BIN", bin)
			return nil
		},
	})
}

// TestMain acts as the main entrypoint. Testscript requires its own Main wrapper.
func TestMain(m *testing.M) {
	// Clean up the binary after all tests finish
	defer func() {
		if binaryPath != "" {
			os.Remove(binaryPath)
		}
	}()

	os.Exit(testscript.RunMain(m, map[string]func() int{
		// We could wire standard Go commands here if we wanted,
		// but we are relying on compiling the binary and adding it to PATH.
	}))
}
