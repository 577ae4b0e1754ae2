package commands

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/analysis"
	"github.com/fintrack-dev/fintrack/internal/buildinfo"
	"github.com/fintrack-dev/fintrack/internal/charts"
	"github.com/fintrack-dev/fintrack/internal/config"
	"github.com/fintrack-dev/fintrack/internal/loader"
	"github.com/fintrack-dev/fintrack/internal/menu"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	dataPath   string
	logLevel   string
	outputDir  string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
// Without a subcommand it runs the interactive menu.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "fintrack",
		Short:   "Personal finance statistics and charts",
		Version: buildinfo.String(),
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			return session.Run(cmd.Context(), cmd.InOrStdin())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.FileName, "configuration file")
	flags.StringVar(&opts.dataPath, "data", "", "record table (.csv or .xlsx), overrides data.path")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error), overrides log.level")
	flags.StringVar(&opts.outputDir, "out", "", "chart output directory, overrides charts.output_dir")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newSummaryCommand(opts))
	rootCmd.AddCommand(newTopCommand(opts))
	rootCmd.AddCommand(newRatiosCommand(opts))
	rootCmd.AddCommand(newChartCommand(opts))

	return rootCmd
}

// loadConfig reads the config file. The default file may be absent; a file
// named with --config must exist.
func loadConfig(cmd *cobra.Command, opts *globalOptions) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(opts.configPath)
	} else {
		cfg, err = config.LoadOrDefault(opts.configPath)
	}
	if err != nil {
		return nil, err
	}

	if opts.dataPath != "" {
		cfg.Data.Path = opts.dataPath
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.outputDir != "" {
		cfg.Charts.OutputDir = opts.outputDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	return log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Level:  lvl,
		Prefix: "fintrack",
	}), nil
}

// openSession loads config and the record table and builds a menu session.
func openSession(cmd *cobra.Command, opts *globalOptions) (*menu.Session, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cmd, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	tbl, err := loader.Load(cfg.Data.Path)
	if err != nil {
		return nil, fmt.Errorf("loading data: %w", err)
	}
	logger.Debug("loaded record table", "path", cfg.Data.Path, "rows", tbl.Rows(), "columns", len(tbl.Columns()))

	cats := cfg.CategorySet()
	// Missing categories only fail the commands that need them.
	if err := analysis.ValidateCategories(tbl, cats); err != nil {
		logger.Warn("record table does not match categories", "err", err)
	}

	return menu.New(menu.Options{
		Table:      tbl,
		Categories: cats,
		Renderer:   charts.NewRenderer(cfg.Charts.Width, cfg.Charts.Height, cfg.Charts.Bins),
		OutputDir:  cfg.Charts.OutputDir,
		Out:        cmd.OutOrStdout(),
		Logger:     logger,
	}), nil
}
