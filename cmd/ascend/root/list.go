package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Elias-Missa/ascendency-rpg/internal/ui"
)

func newListCmd() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks for a day",
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

			tasks, err := svc.TaskRepo().ListByDate(ctx, svc.UserID(), date.String())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCalendar, fmt.Sprintf("Tasks for %s", date)))
			if len(tasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No tasks assigned. Try `ascend gen` or `ascend add`."))
				return nil
			}

			done := 0
			for _, t := range tasks {
				if t.IsCompleted {
					done++
				}
				fmt.Fprintf(out, "%s %s %s %s\n",
					ui.CheckBox(t.IsCompleted),
					ui.Muted.Render(shortID(t.ID)),
					t.Name,
					ui.Gold.Render(fmt.Sprintf("+%d XP", t.XPReward)))
			}
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d/%d complete", done, len(tasks))))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Date YYYY-MM-DD (default today)")

	return cmd
}
