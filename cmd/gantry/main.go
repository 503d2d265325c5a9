package main

import (
	"os"

	"github.com/spf13/cobra"

	"gantry/internal/interfaces/cli/hashpw"
	"gantry/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gantry",
		Short: "Gantry - rate-limit policy control plane",
		Long:  `Gantry stores the rate-limit policy document for the enforcement gateway and serves the admin API that mutates it.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		hashpw.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
