package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soufianesaid-dot/Gymtrackerr/internal/ui"
)

func newExportCmd(g *globals) *cobra.Command {
	var dir string
	var stdout bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON backup of every logged workout",
		Long: `Write the full workout log as a pretty-printed JSON array.

The file is named aura_strength_backup_<YYYY-MM-DD>.json and is compatible
with backups made by the browser version of Aura Strength.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, g)
			if err != nil {
				return err
			}
			defer cleanup()

			if stdout {
				return svc.Export(cmd.OutOrStdout())
			}
			if dir == "" {
				dir = g.cfg.Backup.Dir
			}
			path, err := svc.ExportToDir(dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconExport+" Exported"), path, ui.Muted.Render(fmt.Sprintf("(%d entries)", svc.Store().Len())))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Output directory (default backup.dir from config)")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Write the JSON to stdout instead of a file")

	return cmd
}
