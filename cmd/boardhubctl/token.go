package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"boardhub/pkg/config"
	"boardhub/pkg/server/middleware"
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage auth tokens",
	Long:  `Manage boardhub auth tokens.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'token' requires a subcommand (generate)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

// tokenGenerateCmd represents the token generate command
var tokenGenerateCmd = &cobra.Command{
	Use:   "generate <email>",
	Short: "Generate a signed auth token for a user",
	Long: `Generate a signed auth token for a user.

Requires BOARDHUB_TOKEN_SECRET in the environment. The token lifetime
defaults to the configured token_ttl; override it with --ttl.

The token is output to STDOUT, suitable for use as a bearer token.

Example:
  boardhubctl token generate ada@example.com
  boardhubctl token generate ada@example.com --ttl 7200`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		email := args[0]

		secret := os.Getenv("BOARDHUB_TOKEN_SECRET")
		if secret == "" {
			fmt.Fprintln(os.Stderr, "BOARDHUB_TOKEN_SECRET environment variable is required")
			os.Exit(1)
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}

		ttl := cfg.TokenLifetime()
		if seconds, _ := cmd.Flags().GetInt("ttl"); seconds > 0 {
			ttl = time.Duration(seconds) * time.Second
		}

		token, err := middleware.IssueToken([]byte(secret), email, ttl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate token: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(token)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenGenerateCmd)
	tokenGenerateCmd.Flags().Int("ttl", 0, "Token lifetime in seconds (default: configured token_ttl)")
}
