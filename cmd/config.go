package cmd

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/jmcampanini/authorcheck/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config [directory]",
	Short: "Print current configuration in TOML format",
	Long: `Print the effective configuration for a directory in TOML format.

This outputs the merged configuration (defaults with any authorcheck.toml
overrides applied). The output can be redirected to a file to create a new
configuration:

  authorcheck config > authorcheck.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	loadResult, err := config.NewDefaultLoader().LoadFor(directoryArg(args))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	for _, key := range loadResult.UnknownKeys {
		if _, err := fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", key); err != nil {
			return err
		}
	}

	return writeConfig(cmd, loadResult.Config)
}

// writeConfig encodes cfg as TOML to the command's stdout.
func writeConfig(cmd *cobra.Command, cfg config.Config) error {
	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	_, err := fmt.Fprint(cmd.OutOrStdout(), buf.String())
	return err
}
