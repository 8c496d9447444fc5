package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Elias-Missa/ascendency-rpg/internal/engine"
	"github.com/Elias-Missa/ascendency-rpg/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent daily activity",
		Long:  "Show completed-task counts and XP earned per day, from the XP award ledger.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if days < 1 {
				days = 1
			}

			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			since := engine.Today().AddDays(-(days - 1))
			totals, err := svc.AwardRepo().DailyTotals(ctx, svc.UserID(), since.String())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCalendar, fmt.Sprintf("Last %d days", days)))
			if len(totals) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No completions yet."))
				return nil
			}
			for _, d := range totals {
				fmt.Fprintf(out, "%s  %s  %s\n",
					ui.Key.Render(d.Date),
					fmt.Sprintf("%d done", d.Completed),
					ui.Gold.Render(fmt.Sprintf("+%d XP", d.XP)))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 14, "How many days back to show")

	return cmd
}
