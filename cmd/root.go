package cmd

import (
	"github.com/spf13/cobra"

	"github.com/maturapolski/matura/internal/app"
	"github.com/maturapolski/matura/internal/config"
	"github.com/maturapolski/matura/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "matura",
	Short: "Matura exam practice in the terminal",
	Long:  "Matura: practice Polish Matura exam exercises against the learning service, graded with instant feedback.",
	RunE: func(cmd *cobra.Command, args []string) error {
		skip, _ := cmd.Flags().GetBool("no-splash")
		return runApp(cmd, app.Options{SkipWelcome: skip})
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.RegisterFlags(rootCmd)
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(resendCmd)
	rootCmd.AddCommand(forgotCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the journal path using --db / MATURA_DB (highest
// priority), then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
