package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soufianesaid-dot/Gymtrackerr/internal/catalog"
	"github.com/soufianesaid-dot/Gymtrackerr/internal/ui"
)

func newExercisesCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "exercises [body-part]",
		Aliases: []string{"ls"},
		Short:   "List exercises, optionally for one body part",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts := catalog.BodyParts()
			if len(args) == 1 {
				bp, err := catalog.ParseBodyPart(args[0])
				if err != nil {
					return err
				}
				parts = []catalog.BodyPart{bp}
			}

			out := cmd.OutOrStdout()
			for _, bp := range parts {
				fmt.Fprintln(out, ui.H2.Render(string(bp)))
				for _, ex := range catalog.ForBodyPart(bp) {
					fmt.Fprintf(out, "- %s %s\n", ui.Key.Render(ex.ID), ex.Name)
				}
			}
			return nil
		},
	}

	return cmd
}
