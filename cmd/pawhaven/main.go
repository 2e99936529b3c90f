package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shelterhq/pawhaven/internal/interfaces/cli/migrate"
	"github.com/shelterhq/pawhaven/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pawhaven",
		Short: "PawHaven - animal shelter administration backend",
		Long:  `PawHaven is the administration backend for an animal shelter, covering pets, adoptions, rescues, volunteers, donations and reporting.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
