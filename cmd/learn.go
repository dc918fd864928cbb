package cmd

import (
	"github.com/spf13/cobra"

	"github.com/maturapolski/matura/internal/app"
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Start a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.Options{SkipWelcome: true, StartLearning: true})
	},
}
