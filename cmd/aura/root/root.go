package root

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/soufianesaid-dot/Gymtrackerr/internal/config"
	"github.com/soufianesaid-dot/Gymtrackerr/internal/logging"
	"github.com/soufianesaid-dot/Gymtrackerr/internal/ui"
)

const Version = "0.1.0"

// globals is the state shared by all subcommands, filled in PersistentPreRunE.
type globals struct {
	cfgPath string
	dbPath  string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:   "aura",
		Short: "Aura Strength: a local-first workout log",
		Long: `Aura Strength records weight/rep sets per exercise and shows your history.

Run without arguments to open the interactive Log / History / Settings view.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(g.cfgPath)
			if err != nil {
				return err
			}
			if g.dbPath != "" {
				cfg.Store.Path = g.dbPath
			}
			g.cfg = cfg
			g.logger = logging.New(logging.Params{
				File:       cfg.Logging.File,
				Level:      cfg.Logging.Level,
				MaxSizeMB:  cfg.Logging.MaxSizeMB,
				MaxBackups: cfg.Logging.MaxBackups,
				Verbose:    g.verbose,
			})
			g.logger.Debug("command start", zap.String("cmd", cmd.CommandPath()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if g.logger != nil {
				_ = g.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, g)
		},
	}

	cmd.Version = Version
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.PersistentFlags().StringVarP(&g.cfgPath, "config", "c", config.DefaultPath(), "Config file")
	cmd.PersistentFlags().StringVar(&g.dbPath, "db", "", "Database path (default $AURA_DB or ~/.aura_strength.db)")
	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newAppCmd(g),
		newExercisesCmd(g),
		newLogCmd(g),
		newHistoryCmd(g),
		newLastCmd(g),
		newExportCmd(g),
		newImportCmd(g),
		newTipCmd(g),
		newConfigCmd(g),
	)
	return cmd
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		stop()
		os.Exit(1)
	}
}
