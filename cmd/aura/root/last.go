package root

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/soufianesaid-dot/Gymtrackerr/internal/catalog"
	"github.com/soufianesaid-dot/Gymtrackerr/internal/ui"
)

func newLastCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "last <exercise-id>",
		Short: "Show the previous attempt at an exercise",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("exercise-id is required")
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

			out := cmd.OutOrStdout()
			prev := svc.PreviousAttempt(args[0])
			if prev == nil {
				fmt.Fprintf(out, "%s %s\n", ui.Muted.Render("No previous attempt for"), catalog.ExerciseName(args[0]))
				return nil
			}
			fmt.Fprintln(out, ui.Heading(ui.IconHistory, "Last Time"))
			fmt.Fprintln(out, historyLine(*prev, time.Local))
			fmt.Fprintln(out, ui.LabelValue("Date", prev.Date.In(time.Local).Format("Mon, Jan 2 2006")))
			return nil
		},
	}

	return cmd
}
