package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"ticketdesk/internal/interfaces/cli/migrate"
	"ticketdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "ticketdesk",
		Short:        "ticketdesk - ticket tracking service",
		Long:         `ticketdesk serves the ticket HTTP API and manages its database schema.`,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
