package root

import (
	"github.com/spf13/cobra"

	"github.com/soufianesaid-dot/Gymtrackerr/internal/tui"
)

func newAppCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "app",
		Short: "Open the interactive Log / History / Settings view",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, g)
		},
	}

	return cmd
}

func runApp(cmd *cobra.Command, g *globals) error {
	ctx := cmd.Context()
	svc, cleanup, err := openService(ctx, g)
	if err != nil {
		return err
	}
	defer cleanup()

	return tui.RunApp(ctx, svc, tui.Options{BackupDir: g.cfg.Backup.Dir}, cmd.InOrStdin(), cmd.OutOrStdout())
}
