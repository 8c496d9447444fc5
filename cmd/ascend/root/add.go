package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Elias-Missa/ascendency-rpg/internal/engine"
	"github.com/Elias-Missa/ascendency-rpg/internal/ui"
)

func newAddCmd() *cobra.Command {
	var xp int
	var dateStr string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a task for a day",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
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

			task, err := svc.AddTask(ctx, args[0], xp, date)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"),
				ui.Muted.Render(shortID(task.ID)),
				task.Name,
				ui.Gold.Render(fmt.Sprintf("+%d XP", task.XPReward)))
			return nil
		},
	}

	cmd.Flags().IntVar(&xp, "xp", 15, fmt.Sprintf("XP reward (%d-%d)", engine.MinTaskXP, engine.MaxTaskXP))
	cmd.Flags().StringVar(&dateStr, "date", "", "Assigned date YYYY-MM-DD (default today)")

	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
