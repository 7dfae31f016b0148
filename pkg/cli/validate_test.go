package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateCommand_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	content := `strictness: strict-stubs
recorderCapacity: 100
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	out, err := executeCommand(t, "validate", path)
	if err != nil {
		t.Fatalf("validate returned error: %v", err)
	}
	if !strings.Contains(out, "is valid.") {
		t.Errorf("expected valid message, got: %s", out)
	}
}

func TestValidateCommand_InvalidValues(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	content := `strictness: paranoid
bogusKey: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	out, err := executeCommand(t, "validate", path)
	if err == nil {
		t.Fatal("expected error for invalid config")
	}
	if !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("expected 'validation failed' error, got: %v", err)
	}
	if !strings.Contains(out, "Validation failed:") {
		t.Errorf("expected failure listing, got: %s", out)
	}
	if !strings.Contains(out, "strictness") {
		t.Errorf("expected strictness error path in output, got: %s", out)
	}
	if !strings.Contains(out, "bogusKey") {
		t.Errorf("expected unknown key reported, got: %s", out)
	}
}

func TestValidateCommand_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(path, []byte("strictness: [unclosed\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	out, err := executeCommand(t, "validate", path)
	if err == nil {
		t.Fatal("expected error for broken YAML")
	}
	if !strings.Contains(out, "invalid YAML") {
		t.Errorf("expected YAML error in output, got: %s", out)
	}
}

func TestValidateCommand_MissingFileArgument(t *testing.T) {
	_, err := executeCommand(t, "validate", filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateCommand_DiscoversLocalFile(t *testing.T) {
	tmpDir := isolateConfig(t)
	content := "strictness: warn\n"
	if err := os.WriteFile(filepath.Join(tmpDir, ".mockkitrc.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	out, err := executeCommand(t, "validate")
	if err != nil {
		t.Fatalf("validate returned error: %v", err)
	}
	if !strings.Contains(out, ".mockkitrc.yaml is valid.") {
		t.Errorf("expected discovered file reported valid, got: %s", out)
	}
}

func TestValidateCommand_NothingToValidate(t *testing.T) {
	isolateConfig(t)

	_, err := executeCommand(t, "validate")
	if err == nil {
		t.Fatal("expected error when no config file exists")
	}
	if !strings.Contains(err.Error(), "no configuration file found") {
		t.Errorf("expected discovery error, got: %v", err)
	}
}

func TestValidateCommand_JSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(path, []byte("mockMaker: bytecode\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	out, err := executeCommand(t, "validate", path, "--json")
	if err == nil {
		t.Fatal("expected error for invalid config")
	}

	var parsed ValidateOutput
	if jsonErr := json.Unmarshal([]byte(out), &parsed); jsonErr != nil {
		t.Fatalf("failed to parse JSON output: %v\nOutput was: %s", jsonErr, out)
	}
	if parsed.Valid {
		t.Error("expected valid=false")
	}
	if parsed.Path != path {
		t.Errorf("expected path %q, got %q", path, parsed.Path)
	}
	if len(parsed.Errors) == 0 {
		t.Fatal("expected at least one error")
	}
	if parsed.Errors[0].Path != "mockMaker" {
		t.Errorf("expected error path 'mockMaker', got %q", parsed.Errors[0].Path)
	}
}
