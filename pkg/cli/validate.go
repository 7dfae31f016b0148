package cli

import (
	"fmt"

	"github.com/mockkit/mockkit/pkg/cli/internal/output"
	"github.com/mockkit/mockkit/pkg/config"
	"github.com/spf13/cobra"
)

// ValidateOutput represents JSON output format for the validate command.
type ValidateOutput struct {
	Path   string               `json:"path"`
	Valid  bool                 `json:"valid"`
	Errors []config.SchemaError `json:"errors,omitempty"`
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a mockkit configuration file",
	Long: `Validate a mockkit configuration file without applying it.

This command checks:
  - YAML syntax
  - Schema validation (known keys, types, valid values)
  - Semantic validation (value ranges)

When no file is given, the local .mockkitrc.yaml is validated, falling back
to the global config file.`,
	Example: `  # Validate the discovered config
  mockkit validate

  # Validate a specific file
  mockkit validate ./ci.mockkitrc.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		} else {
			discovered, err := discoverConfigFile()
			if err != nil {
				return err
			}
			path = discovered
		}

		result, err := config.ValidateConfigFile(path)
		if err != nil {
			return err
		}

		// Schema-valid files still get a semantic check of the loaded values.
		if result.IsValid() {
			if cfg, err := config.LoadFile(path); err == nil {
				if verr := cfg.Validate(); verr != nil {
					result.AddError("", verr.Error())
				}
			}
		}

		if jsonOutput {
			if err := output.JSON(ValidateOutput{
				Path:   path,
				Valid:  result.IsValid(),
				Errors: result.Errors,
			}); err != nil {
				return err
			}
			if !result.IsValid() {
				return fmt.Errorf("validation failed with %d error(s)", len(result.Errors))
			}
			return nil
		}

		if !result.IsValid() {
			fmt.Println("Validation failed:")
			for _, e := range result.Errors {
				fmt.Printf("  - %s\n", e.Error())
			}
			return fmt.Errorf("validation failed with %d error(s)", len(result.Errors))
		}

		fmt.Printf("%s is valid.\n", path)
		return nil
	},
}

// discoverConfigFile finds the config file to validate when none is given.
func discoverConfigFile() (string, error) {
	if localPath, err := config.FindLocalConfig(); err == nil && localPath != "" {
		return localPath, nil
	}
	if globalPath, err := config.FindGlobalConfig(); err == nil && globalPath != "" {
		return globalPath, nil
	}
	return "", fmt.Errorf("no configuration file found (searched for %s and a global config)", config.LocalConfigFileNames[0])
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
