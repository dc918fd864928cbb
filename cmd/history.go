package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/store"
	"github.com/maturapolski/matura/internal/ui/layout"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List finished sessions from the local journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		st, err := e.openJournal()
		if err != nil {
			return err
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		sessions, err := st.Journal().RecentSessions(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println(i18n.T("history.empty"))
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SESSION\tENDED\tDONE\tCORRECT\tPOINTS\tTIME")
		for _, s := range sessions {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%g\t%s\n",
				s.SessionID,
				s.EndedAt.Local().Format("2006-01-02 15:04"),
				s.Completed,
				s.Correct,
				s.Points,
				layout.Clock(s.TimeSpent),
			)
		}
		return w.Flush()
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "List the answers given in one session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		st, err := e.openJournal()
		if err != nil {
			return err
		}
		defer st.Close()

		answers, err := st.Journal().SessionAnswers(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("query answers: %w", err)
		}
		if len(answers) == 0 {
			fmt.Println(i18n.T("history.no_answers"))
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "#\tEXERCISE\tKIND\tCATEGORY\tSCORE\tRESULT")
		for i, a := range answers {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%g\t%s\n",
				i+1, a.ExerciseID, a.Kind, a.Category, a.Score, a.Outcome)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Number of sessions to show")
	historyCmd.AddCommand(historyShowCmd)
}
