package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/f3rmion/cj/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize cj configuration",
	Long: `Initialize configuration files in your config directory.

This creates:
  - config.yaml  (oracle backend, model, timeout, logging)
  - common.yaml  (extra characters answered without the oracle)

API keys are best left in the environment (GEMINI_API_KEY or ANTHROPIC_API_KEY).`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	out := cmd.OutOrStdout()

	configPath := filepath.Join(cfgDir, config.ConfigFile)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("config already exists: %s\nUse --force to overwrite", configPath)
	}

	if err := config.EnsureConfigDir(cfgDir); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	fmt.Fprintf(out, "Initializing cj configuration in %s\n\n", cfgDir)

	if err := config.Save(configPath, config.Default()); err != nil {
		return err
	}
	fmt.Fprintf(out, "  Created %s\n", config.ConfigFile)

	commonPath := filepath.Join(cfgDir, config.CommonFile)
	if err := config.SaveCommon(commonPath, map[string]string{"好": "VND"}); err != nil {
		return err
	}
	fmt.Fprintf(out, "  Created %s\n", config.CommonFile)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. export GEMINI_API_KEY=... (or set oracle.backend: anthropic)")
	fmt.Fprintln(out, "  2. Run 'cj lookup 我' to test a lookup")
	fmt.Fprintln(out, "  3. Run 'cj' to open the widget")

	return nil
}
