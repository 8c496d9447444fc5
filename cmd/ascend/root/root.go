package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Elias-Missa/ascendency-rpg/internal/ui"
)

const Version = "0.1.0"

var (
	flagDB      string
	flagProfile string
)

var rootCmd = &cobra.Command{
	Use:           "ascend",
	Short:         "Ascend — daily quests, XP and streaks",
	Long:          "Ascend is a local-first CLI/TUI that tracks daily self-improvement quests, awarding XP, levels and streaks.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database path (default $ASCEND_DB or ~/.ascend.db)")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Profile id (default $ASCEND_PROFILE)")

	rootCmd.AddCommand(
		newStatusCmd(),
		newListCmd(),
		newAddCmd(),
		newGenCmd(),
		newDoCmd(),
		newHistoryCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
