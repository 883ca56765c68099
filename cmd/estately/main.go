package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/estately-inc/estately/internal/interfaces/cli/migrate"
	"github.com/estately-inc/estately/internal/interfaces/cli/server"
	"github.com/estately-inc/estately/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "estately",
		Short:   "Estately - real-estate listings API",
		Long:    `Estately serves property listings with search, moderation and owner management, plus migration tooling.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
