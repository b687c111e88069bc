// Package cmd contains all CLI commands for cj.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/f3rmion/cj/internal/cangjie"
	"github.com/f3rmion/cj/internal/config"
	"github.com/f3rmion/cj/internal/logging"
	"github.com/f3rmion/cj/internal/oracle"
	"github.com/f3rmion/cj/internal/reading"
	"github.com/f3rmion/cj/internal/resolver"
	"github.com/f3rmion/cj/internal/tui"
)

var (
	cfgDir string
	v      = config.NewViper()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cj",
	Short: "倉頡 - Cangjie code lookup",
	Long: `cj looks up the Cangjie (倉頡, 5th generation) code of a character and
the radicals each key stands for.

Punctuation and a set of common characters are answered from built-in tables.
Anything else is asked of a generative-language API (Gemini by default, set
GEMINI_API_KEY; or --backend anthropic with ANTHROPIC_API_KEY).

Running 'cj' without arguments opens the interactive lookup widget.`,
	SilenceUsage: true,
	RunE:         runShell,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default is $HOME/.config/cj)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose logging")
	rootCmd.PersistentFlags().String("backend", "", "oracle backend: gemini or anthropic")
	rootCmd.PersistentFlags().String("model", "", "oracle model (default depends on backend)")

	v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	v.BindPFlag("oracle.backend", rootCmd.PersistentFlags().Lookup("backend"))
	v.BindPFlag("oracle.model", rootCmd.PersistentFlags().Lookup("model"))
}

// initConfig resolves the config directory and loads .env.
func initConfig() {
	if cfgDir == "" {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		cfgDir = dir
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}
}

// newResolver wires config, logging, tables and the oracle. console receives
// log output; nil keeps logs off the terminal.
func newResolver(ctx context.Context, console io.Writer) (*resolver.Resolver, error) {
	cfg, err := config.Load(cfgDir, v)
	if err != nil {
		return nil, err
	}

	logger, err := logging.NewLogger(cfg.Log, console)
	if err != nil {
		return nil, err
	}

	common, err := config.LoadCommonDir(cfgDir)
	if err != nil {
		return nil, err
	}
	table, err := cangjie.NewTable(cangjie.WithCommon(common))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", config.CommonFile, err)
	}

	var o resolver.Oracle
	client, err := oracle.New(ctx, oracle.Config{
		Backend: cfg.Oracle.Backend,
		Model:   cfg.Oracle.Model,
		APIKey:  cfg.Oracle.APIKey,
		Timeout: cfg.Oracle.Timeout,
		Logger:  logger,
	})
	switch {
	case errors.Is(err, oracle.ErrMissingAPIKey):
		logger.Warn("oracle_disabled", "backend", cfg.Oracle.Backend, "reason", err)
	case err != nil:
		return nil, err
	default:
		o = client
	}

	logger.Debug("resolver_ready",
		slog.String("backend", cfg.Oracle.Backend),
		slog.Int("common", table.CommonSize()),
		slog.Bool("oracle", o != nil),
	)
	return resolver.New(table, o, logger), nil
}

// runShell launches the lookup widget.
func runShell(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	r, err := newResolver(ctx, nil)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		tui.NewShell(ctx, r, reading.NewParser()),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
