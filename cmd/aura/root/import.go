package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soufianesaid-dot/Gymtrackerr/internal/ui"
)

func newImportCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the workout log with a JSON backup",
		Long: `Replace the whole workout log with the contents of a backup file.

The file must hold a JSON array of workout entries. Nothing is merged: the
current log is discarded. An invalid file leaves the log untouched.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("file is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, g)
			if err != nil {
				return err
			}
			defer cleanup()

			n, err := svc.ImportFile(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconImport+" Data imported successfully!"), ui.Muted.Render(fmt.Sprintf("(%d entries)", n)))
			return nil
		},
	}

	return cmd
}
