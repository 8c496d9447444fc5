package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Elias-Missa/ascendency-rpg/internal/ui"
)

func newGenCmd() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate template tasks for an empty day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			date, err := parseDateFlag(dateStr)
			if err != nil {
				return err
			}

			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks, err := svc.GenerateTasks(ctx, date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d tasks for %s\n", ui.Good.Render(ui.IconSparkle+" Generated"), len(tasks), date)
			for _, t := range tasks {
				fmt.Fprintf(out, "  %s %s %s\n", ui.Muted.Render(shortID(t.ID)), t.Name, ui.Gold.Render(fmt.Sprintf("+%d XP", t.XPReward)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Target date YYYY-MM-DD (default today)")

	return cmd
}
