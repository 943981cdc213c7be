package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soufianesaid-dot/Gymtrackerr/internal/catalog"
	"github.com/soufianesaid-dot/Gymtrackerr/internal/ui"
)

func newTipCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tip <exercise-id>",
		Short: "Ask for a one-line form tip",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("exercise-id is required")
			}
			if _, ok := catalog.Find(args[0]); !ok {
				return fmt.Errorf("unknown exercise %q (see `aura exercises`)", args[0])
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

			name := catalog.ExerciseName(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.TipPanel.Render(ui.Tip.Render(svc.Tip(ctx, name))))
			return nil
		},
	}

	return cmd
}
