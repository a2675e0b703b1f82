package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobtrackrctl",
	Short: "JobTrackr server control tool",
	Long:  `jobtrackrctl manages the JobTrackr job application tracking server: run the server, migrate the database, manage users, and export data.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
