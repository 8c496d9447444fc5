package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Elias-Missa/ascendency-rpg/internal/engine"
	"github.com/Elias-Missa/ascendency-rpg/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP and streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.ProfileRepo().GetOrCreate(ctx, svc.UserID())
			if err != nil {
				return err
			}

			level := engine.LevelForXP(p.CurrentXP)
			within := engine.XPWithinLevel(p.CurrentXP)
			toNext := engine.XPToNextLevel(p.CurrentXP)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Hunter Status"))
			fmt.Fprintln(out, ui.LabelValue("Level", level))
			fmt.Fprintf(out, "%s %s %s\n",
				ui.ProgressBar(engine.ProgressFraction(p.CurrentXP), 20),
				ui.Key.Render(fmt.Sprintf("%d/%d XP", within, engine.XPPerLevel)),
				ui.Muted.Render(fmt.Sprintf("(%d total, %d to level %d)", p.CurrentXP, toNext, level+1)))
			fmt.Fprintln(out, ui.StreakBadge(p.CurrentStreak, p.BestStreak))

			today := engine.Today()
			tasks, err := svc.TaskRepo().ListByDate(ctx, svc.UserID(), today.String())
			if err != nil {
				return err
			}
			done := 0
			for _, t := range tasks {
				if t.IsCompleted {
					done++
				}
			}
			fmt.Fprintln(out, ui.LabelValue("Today", fmt.Sprintf("%d/%d tasks complete", done, len(tasks))))
			return nil
		},
	}

	return cmd
}
