package main

import (
	"os"

	"github.com/spf13/cobra"

	"stayops/internal/interfaces/cli/migrate"
	"stayops/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stayops",
		Short: "StayOps - hotel operations back office",
		Long:  `StayOps serves the hotel operations REST API and runs the mailbox ingestion loop that turns incoming email into tickets.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
