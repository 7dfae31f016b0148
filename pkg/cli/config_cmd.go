package cli

import (
	"fmt"

	"github.com/mockkit/mockkit/pkg/cli/internal/output"
	"github.com/mockkit/mockkit/pkg/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show effective configuration with source annotations",
	Long: `Show the effective mockkit configuration after merging all sources.

Each value is annotated with where it came from: built-in default, global
config file, local config file, environment variable, or flag.`,
	Example: `  mockkit config
  mockkit config --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := effectiveConfig(cmd)
		if err != nil {
			return err
		}

		if jsonOutput {
			return output.JSON(cfg)
		}

		fmt.Println("Effective Configuration:")
		fmt.Println()

		printConfigValue("strictness", cfg.Strictness, cfg.Sources["strictness"])
		printConfigValue("mockMaker", cfg.MockMaker, cfg.Sources["mockMaker"])
		printConfigValue("serializable", cfg.Serializable, cfg.Sources["serializable"])
		printConfigValue("verboseLogging", cfg.VerboseLogging, cfg.Sources["verboseLogging"])
		printConfigValue("recorderCapacity", cfg.RecorderCapacity, cfg.Sources["recorderCapacity"])
		printConfigValue("logLevel", cfg.LogLevel, cfg.Sources["logLevel"])
		printConfigValue("logFormat", cfg.LogFormat, cfg.Sources["logFormat"])

		// Show loaded sources
		fmt.Println()
		fmt.Println("Sources loaded:")

		if globalPath, err := config.FindGlobalConfig(); err == nil && globalPath != "" {
			fmt.Printf("  • %s (global)\n", globalPath)
		}
		if localPath, err := config.FindLocalConfig(); err == nil && localPath != "" {
			fmt.Printf("  • %s (local)\n", localPath)
		}

		return nil
	},
}

// printConfigValue prints a config value with source annotation.
func printConfigValue(name string, value interface{}, source string) {
	if source == "" {
		source = config.SourceDefault
	}
	fmt.Printf("  %-18s %v%s\n", name+":", value, formatSource(source))
}

// formatSource formats a source type for display.
func formatSource(source string) string {
	switch source {
	case config.SourceDefault:
		return "  (default)"
	case config.SourceEnv:
		return "  (env)"
	case config.SourceGlobal:
		return "  (global config)"
	case config.SourceLocal:
		return "  (local config)"
	case config.SourceFlag:
		return "  (flag)"
	default:
		return ""
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
}
