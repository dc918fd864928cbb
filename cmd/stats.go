package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/screens/errtext"
	"github.com/maturapolski/matura/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		if !e.creds.LoggedIn() {
			return errors.New(i18n.T("errors.auth_missing"))
		}

		ctx := cmd.Context()
		stats, err := e.client.Stats(ctx)
		if err != nil {
			return errors.New(errtext.Of(err))
		}

		fmt.Printf("%-22s %d\n", i18n.T("stats.streak")+":", stats.Streak)
		fmt.Printf("%-22s %d\n", i18n.T("progress.today")+":", stats.TodayExercises)
		fmt.Printf("%-22s %d\n", i18n.T("progress.total_exercises")+":", stats.TotalExercises)
		fmt.Printf("%-22s %d\n", i18n.T("progress.total_sessions")+":", stats.TotalSessions)
		fmt.Printf("%-22s %.0f%%\n", i18n.T("progress.correct_rate")+":", stats.CorrectRate)
		fmt.Printf("%-22s %.1f\n", i18n.T("progress.avg_points")+":", stats.AvgPoints)

		if dp, err := e.client.DifficultyProgress(ctx); err != nil {
			e.log.Warn().Err(err).Msg("difficulty progress")
		} else {
			fmt.Printf("%-22s %d\n", i18n.T("home.difficulty")+":", dp.CurrentMaxDifficulty)
		}

		st, err := e.openJournal()
		if err != nil {
			e.log.Warn().Err(err).Msg("journal unavailable")
			return nil
		}
		defer st.Close()

		totals, err := st.Journal().CategoryTotals(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("category totals: %w", err)
		}
		if len(totals) == 0 {
			return nil
		}
		fmt.Println()
		fmt.Println(i18n.T("progress.by_category"))
		for _, t := range totals {
			fmt.Printf("  %-20s %3d / %-3d  %g\n", t.Category, t.Correct, t.Answered, t.Points)
		}
		return nil
	},
}
