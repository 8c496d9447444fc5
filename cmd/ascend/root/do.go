package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Elias-Missa/ascendency-rpg/internal/engine"
	"github.com/Elias-Missa/ascendency-rpg/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a task",
		Long:  "Complete a task by id (a unique id prefix is enough) and collect its XP.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := svc.TaskRepo().ResolveID(ctx, svc.UserID(), args[0])
			if err != nil {
				return err
			}
			if id == "" {
				return engine.NotFoundError{ID: args[0]}
			}

			res, err := svc.CompleteTask(ctx, id, engine.Today())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.AlreadyCompleted {
				fmt.Fprintf(out, "%s %s\n", ui.Warn.Render(ui.IconInfo+" Already completed:"), res.TaskName)
				return nil
			}

			fmt.Fprintf(out, "%s %s %s\n",
				ui.Good.Render(ui.IconDone+" Done"),
				res.TaskName,
				ui.Gold.Render(fmt.Sprintf("+%d XP", res.XPAwarded)))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d (%d/%d into level %d)",
				res.NewXP, engine.XPWithinLevel(res.NewXP), engine.XPPerLevel, res.NewLevel)))

			if res.LeveledUp {
				fmt.Fprintf(out, "%s %s You are now level %d\n", ui.BadgeLevelUp, ui.IconSparkle, res.NewLevel)
			}
			if ev := res.StreakEvent; ev != nil {
				switch ev.Type {
				case engine.StreakBest:
					fmt.Fprintf(out, "%s\n", ui.Gold.Render(fmt.Sprintf("%s %d-day streak — new personal best!", ui.IconFlame, ev.Count)))
				default:
					fmt.Fprintf(out, "%s\n", ui.Warn.Render(fmt.Sprintf("%s %d-day streak — keep it going", ui.IconFlame, ev.Count)))
				}
			}
			return nil
		},
	}

	return cmd
}
