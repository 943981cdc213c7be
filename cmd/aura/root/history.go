package root

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/soufianesaid-dot/Gymtrackerr/internal/catalog"
	"github.com/soufianesaid-dot/Gymtrackerr/internal/engine"
	"github.com/soufianesaid-dot/Gymtrackerr/internal/storage"
	"github.com/soufianesaid-dot/Gymtrackerr/internal/ui"
)

func newHistoryCmd(g *globals) *cobra.Command {
	var days int
	var utc bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show logged workouts grouped by day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, g)
			if err != nil {
				return err
			}
			defer cleanup()

			loc := time.Local
			if utc {
				loc = time.UTC
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconHistory, "Your Training History"))
			groups := svc.History(loc)
			if len(groups) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No records yet. Start training!"))
				return nil
			}
			groups = engine.RecentDays(groups, time.Now().In(loc), days)
			if len(groups) == 0 {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("Nothing logged in the last %d day(s).", days)))
				return nil
			}
			for _, grp := range groups {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render(ui.IconCalendar+" "+strings.ToUpper(grp.Label)))
				for _, l := range grp.Logs {
					fmt.Fprintln(out, historyLine(l, loc))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "n", 0, "Only show the last N calendar days, today included (0 = all)")
	cmd.Flags().BoolVar(&utc, "utc", false, "Group by UTC calendar day instead of local time")

	return cmd
}

func historyLine(l storage.ExerciseLog, loc *time.Location) string {
	sets := make([]string, len(l.Sets))
	for i, s := range l.Sets {
		sets[i] = engine.SetSummary(s)
	}
	return fmt.Sprintf("- %s %s %s %s",
		ui.Muted.Render(l.Date.In(loc).Format("15:04")),
		catalog.ExerciseName(l.ExerciseID),
		strings.Join(sets, ", "),
		ui.Muted.Render(fmt.Sprintf("(vol %gkg)", engine.TotalVolume(l))),
	)
}
