package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cyberbuddy/backend/pkg/config"
	"github.com/cyberbuddy/backend/pkg/security/jwt"
)

var rootCmd = &cobra.Command{
	Use:   "tokengen",
	Short: "Print a bearer token for the chat endpoint guard",
	Long: `Sign an HS256 token with JWT_SECRET and JWT_ISSUER from the environment (or .env).

Examples:
  tokengen                       # subject "cli", valid for 24h
  tokengen --sub web-ui --ttl 720h`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.Flags().String("sub", "cli", "token subject (client name)")
	rootCmd.Flags().Duration("ttl", 24*time.Hour, "token lifetime")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	sub, err := cmd.Flags().GetString("sub")
	if err != nil {
		return fmt.Errorf("read --sub: %w", err)
	}
	ttl, err := cmd.Flags().GetDuration("ttl")
	if err != nil {
		return fmt.Errorf("read --ttl: %w", err)
	}
	if ttl <= 0 {
		return fmt.Errorf("--ttl must be positive, got %s", ttl)
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}
	token, err := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, ttl).Generate(sub)
	if err != nil {
		return fmt.Errorf("generate token: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
