package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charliek/sigtab/internal/config"
	"github.com/charliek/sigtab/internal/render"
	"github.com/charliek/sigtab/internal/signals"
	"github.com/spf13/cobra"
)

// Version is set during build
var Version = "dev"

// Global flags
var (
	configPath string
	verbose    bool
)

// Shared state prepared before any command runs
var (
	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd represents the base command. Run without arguments it prints
// the signal table followed by the signal count.
var rootCmd = &cobra.Command{
	Use:   "sigtab",
	Short: "Generate the guarded signal constant table",
	Long: `sigtab merges the Linux and macOS signal lists, strips the SIG prefix,
drops duplicate names and prints one #ifdef-guarded registration line per
signal, sorted by name, followed by the number of signals.

Examples:
  sigtab                                  # Print the table and count
  sigtab splice -t signal_tmpl.c -o signal.c
  sigtab list --json`,
	Version:           Version,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runGenerate,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sigtab version %s\n", Version)
	},
}

func init() {
	// Persistent flags available to all subcommands
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (built-in signal lists when empty)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	// Set version template
	rootCmd.SetVersionTemplate("sigtab version {{.Version}}\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(spliceCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(browseCmd)
}

// setup builds the logger and loads the configuration
func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	c, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg = c
	return nil
}

// loadConfig returns the built-in configuration unless --config was given
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	c, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded config", "path", configPath, "sources", len(c.Sources))
	return c, nil
}

// buildRegistry builds the registry from the configured sources
func buildRegistry() *signals.Registry {
	reg := signals.Build(cfg.ToDomainSources()...)
	logger.Debug("built signal registry", "signals", reg.Len(), "duplicates", reg.Skipped())
	return reg
}

func runGenerate(cmd *cobra.Command, args []string) error {
	reg := buildRegistry()
	return render.New(cfg.RenderOptions()).Generate(cmd.OutOrStdout(), reg.Sorted())
}
