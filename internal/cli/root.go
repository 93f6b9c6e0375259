// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/novanotes/nova/internal/config"
	"github.com/novanotes/nova/internal/notes"
	"github.com/novanotes/nova/internal/ui"
)

var (
	// Global flags
	configPath string
	verbose    bool
	printToday bool

	// Collaborators, replaced in tests.
	lookupEnv config.LookupFunc = os.LookupEnv
	clock     notes.Clock       = notes.SystemClock{}
	newEditor                   = func(cfg *config.Config, logger *slog.Logger) notes.Editor {
		return notes.NewExecEditor(cfg.GetEditor(), logger)
	}

	// Resolved values
	cfg                *config.Config
	resolvedConfigPath string
	logger             *slog.Logger
	resolvedRoot       string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nova [term]",
	Short: "Open today's note or search your notes",
	Long: `nova keeps plain-text notes in ~/.nova.

Without arguments it creates today's note (DD-MM-YYYY.md, UTC date) if needed
and opens it in your editor. With a term it prints every line under ~/.nova
containing that exact text, case-sensitive.

Examples:
  nova                 # open today's note
  nova "standup"       # search for a phrase
  nova -- -flag        # search for text starting with a dash
  nova --print         # show today's note without opening the editor`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger = newLogger(cmd.ErrOrStderr(), cfg.GetLogLevel(), verbose)
		slog.SetDefault(logger)
		logger.Debug("config", "path", resolvedConfigPath)
		ui.ConfigureTheme(cfg.UI.Accent)

		home, err := config.HomeFromEnv(lookupEnv)
		if err != nil {
			return fmt.Errorf("cannot locate notes: %w ($%s)", err, config.HomeEnvVar)
		}
		root, err := notes.ResolveRoot(home, logger)
		if err != nil {
			return err
		}
		resolvedRoot = root.Path
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			if printToday {
				return fmt.Errorf("--print cannot be combined with a search term")
			}
			return runSearch(cmd, args[0])
		}
		if printToday {
			return runPrint(cmd)
		}
		return runDaily(cmd)
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	bindFlags(rootCmd.PersistentFlags())
	rootCmd.Flags().BoolVarP(&printToday, "print", "p", false, "Print today's note instead of opening the editor")

	info := currentVersionInfo()
	rootCmd.Version = info.Version
	rootCmd.SetVersionTemplate(versionTemplate(info))
}

func bindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&configPath, "config", "", "Path to config file (default "+config.ResolveConfigPath("")+")")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// getRoot returns the resolved notes root.
func getRoot() string {
	return resolvedRoot
}

// getLogger returns the configured logger, or the default before setup.
func getLogger() *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}

// loadConfig reads --config when given, otherwise the XDG default if present.
func loadConfig() (*config.Config, error) {
	resolvedConfigPath = config.ResolveConfigPath(configPath)

	var loaded *config.Config
	var err error
	if strings.TrimSpace(configPath) != "" {
		loaded, err = config.LoadFrom(resolvedConfigPath)
	} else {
		loaded, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if loaded == nil {
		loaded = &config.Config{}
	}
	return loaded, nil
}
