package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mockkit/mockkit/pkg/cli/internal/output"
	"github.com/mockkit/mockkit/pkg/config"
)

var (
	initGlobal bool
	initForce  bool

	initStrictness       string
	initMockMaker        string
	initSerializable     bool
	initVerboseLogging   bool
	initRecorderCapacity int
)

// InitOutput represents JSON output format for the init command.
type InitOutput struct {
	Path string `json:"path"`
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a mockkit configuration file",
	Long: `Create a mockkit configuration file with every setting written out.

Values come from flags when given. Run without value flags for an
interactive prompt. By default the file is written as .mockkitrc.yaml in
the current directory; --global writes the global config file instead.`,
	Example: `  # Interactive setup
  mockkit init

  # Non-interactive
  mockkit init --strictness strict-stubs --recorder-capacity 500

  # Write the global config
  mockkit init --global --strictness warn`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If value flags were intentionally omitted (just ran "mockkit init"),
		// gather everything through an interactive prompt.
		if !initValueFlagChanged(cmd) {
			if err := runInitForm(); err != nil {
				return err
			}
		}

		cfg := &config.Config{
			Strictness:       initStrictness,
			MockMaker:        initMockMaker,
			Serializable:     initSerializable,
			VerboseLogging:   initVerboseLogging,
			RecorderCapacity: initRecorderCapacity,
			LogLevel:         logLevel,
			LogFormat:        logFormat,
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		path, err := initTargetPath()
		if err != nil {
			return err
		}
		if _, statErr := os.Stat(path); statErr == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		if jsonOutput {
			return output.JSON(InitOutput{Path: path})
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

// initValueFlagChanged reports whether any configuration value was given
// on the command line.
func initValueFlagChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"strictness", "mock-maker", "serializable", "verbose-logging", "recorder-capacity"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	flags := cmd.Root().PersistentFlags()
	return flags.Changed("log-level") || flags.Changed("log-format")
}

// runInitForm gathers configuration values interactively.
func runInitForm() error {
	capacity := strconv.Itoa(initRecorderCapacity)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How strictly should stubbing hygiene be enforced?").
				Options(
					huh.NewOption("default (inherit the global setting)", "default"),
					huh.NewOption("lenient (no checks)", "lenient"),
					huh.NewOption("warn (report, do not fail)", "warn"),
					huh.NewOption("strict-stubs (reject misuse)", "strict-stubs"),
				).
				Value(&initStrictness),
			huh.NewSelect[string]().
				Title("How should mock instances be constructed?").
				Options(
					huh.NewOption("reflect (dynamic, at runtime)", "reflect"),
					huh.NewOption("source (generated implementations)", "source"),
				).
				Value(&initMockMaker),
			huh.NewConfirm().
				Title("Mark mocks serializable by default?").
				Value(&initSerializable),
			huh.NewConfirm().
				Title("Log every mock invocation?").
				Value(&initVerboseLogging),
			huh.NewInput().
				Title("How many invocations should the recorder retain?").
				Value(&capacity).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil {
						return errors.New("capacity must be a number")
					}
					if n < 0 || n > config.MaxRecorderCapacity {
						return fmt.Errorf("capacity must be between 0 and %d", config.MaxRecorderCapacity)
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Log level").
				Options(
					huh.NewOption("debug", "debug"),
					huh.NewOption("info", "info"),
					huh.NewOption("warn", "warn"),
					huh.NewOption("error", "error"),
				).
				Value(&logLevel),
			huh.NewSelect[string]().
				Title("Log format").
				Options(
					huh.NewOption("text", "text"),
					huh.NewOption("json", "json"),
				).
				Value(&logFormat),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	initRecorderCapacity, _ = strconv.Atoi(capacity)
	return nil
}

// initTargetPath resolves where the config file will be written.
func initTargetPath() (string, error) {
	if initGlobal {
		paths := config.GetGlobalConfigSearchPaths()
		if len(paths) == 0 {
			return "", errors.New("cannot determine the global config directory")
		}
		path := paths[0]
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", err
		}
		return path, nil
	}
	return filepath.Abs(config.LocalConfigFileNames[0])
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initStrictness, "strictness", config.DefaultStrictness, "Stubbing strictness (default, lenient, warn, strict-stubs)")
	initCmd.Flags().StringVar(&initMockMaker, "mock-maker", config.DefaultMockMaker, "Mock construction strategy (reflect, source)")
	initCmd.Flags().BoolVar(&initSerializable, "serializable", false, "Mark mocks serializable by default")
	initCmd.Flags().BoolVar(&initVerboseLogging, "verbose-logging", false, "Log every mock invocation")
	initCmd.Flags().IntVar(&initRecorderCapacity, "recorder-capacity", config.DefaultRecorderCapacity, "Invocation reports the recorder retains")
	initCmd.Flags().BoolVar(&initGlobal, "global", false, "Write the global config file instead of a local one")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}
