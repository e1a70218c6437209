package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "boardhubctl",
	Short: "Boardhub server command line interface",
	Long:  `Manage the boardhub server: run it, migrate the database, inspect configuration and manage users.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
