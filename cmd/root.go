package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/taskdeck/taskdeck_backend/cmd/http"
	systemcmd "github.com/taskdeck/taskdeck_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "Taskdeck task tracking backend.",
	Long: `Taskdeck is the backend for a small team task tracker. It keeps an
employee directory and a task list with attachments, streams live updates to
connected clients and exports task listings as CSV.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
