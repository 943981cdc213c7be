package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soufianesaid-dot/Gymtrackerr/internal/catalog"
	"github.com/soufianesaid-dot/Gymtrackerr/internal/engine"
	"github.com/soufianesaid-dot/Gymtrackerr/internal/storage"
	"github.com/soufianesaid-dot/Gymtrackerr/internal/ui"
)

func newLogCmd(g *globals) *cobra.Command {
	var rawSets []string

	cmd := &cobra.Command{
		Use:   "log <exercise-id>",
		Short: "Record sets for an exercise",
		Example: `  aura log chest_1 --set 60x8 --set 62.5x6
  aura log abs_1 -s 0x60`,
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
			if len(rawSets) == 0 {
				return errors.New("at least one --set is required")
			}
			sets := make([]storage.SetLog, 0, len(rawSets))
			for _, raw := range rawSets {
				s, err := engine.ParseSet(raw)
				if err != nil {
					return err
				}
				sets = append(sets, s)
			}

			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, g)
			if err != nil {
				return err
			}
			defer cleanup()

			entry, err := svc.LogWorkout(ctx, args[0], sets)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if entry == nil {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" Nothing to save")+" "+ui.Muted.Render("(every set had zero weight and zero reps)"))
				return nil
			}

			summaries := make([]string, len(entry.Sets))
			for i, s := range entry.Sets {
				summaries[i] = engine.SetSummary(s)
			}
			fmt.Fprintf(out, "%s %s: %s\n", ui.Good.Render(ui.IconDone+" Logged"), catalog.ExerciseName(entry.ExerciseID), strings.Join(summaries, ", "))
			if dropped := len(sets) - len(entry.Sets); dropped > 0 {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("(%d empty set(s) skipped)", dropped)))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&rawSets, "set", "s", nil, "Set as <weight>x<reps> (repeatable)")

	return cmd
}
