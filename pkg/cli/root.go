package cli

import (
	"fmt"
	"os"

	"github.com/mockkit/mockkit/pkg/config"
	"github.com/spf13/cobra"
)

var (
	// Persistent flags available to all subcommands
	jsonOutput bool
	logLevel   string
	logFormat  string

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mockkit",
	Short: "mockkit manages mock-object creation defaults",
	Long: `mockkit configures how mock objects are created: stubbing strictness,
extra interfaces, serializability, default answers, and invocation listeners.

This CLI inspects and validates the layered default configuration. Values are
resolved from built-in defaults, the global config file
(~/.config/mockkit/config.yaml), the local .mockkitrc.yaml, MOCKKIT_*
environment variables, and command-line flags.`,
	// No Run function here means 'mockkit' with no args will print help text by default.
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Define persistent flags that apply globally to all mockkit commands
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", config.DefaultLogFormat, "Log format (text, json)")
}

// effectiveConfig resolves the layered configuration and applies any
// explicitly set persistent flags on top with flag provenance.
func effectiveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Root().PersistentFlags()
	overrides := &config.Config{}
	if flags.Changed("log-level") {
		overrides.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		overrides.LogFormat = logFormat
	}
	config.Merge(cfg, overrides, config.SourceFlag)

	return cfg, nil
}
