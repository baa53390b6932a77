package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/therealutkarshpriyadarshi/dashmpd/internal/config"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/middleware"
)

func newTokenCommand() *cobra.Command {
	var configPath, publisher string
	var scopes []string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API token for publishing manifests",
		Long: `Issue a signed API token using the server's JWT secret.

The secret and default lifetime come from the same configuration the API
server reads (CONFIG_PATH and DASHMPD_* environment variables).`,
		Example: `  mpdtool token --publisher encoder-01
  mpdtool token --publisher ci --ttl 15m`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if publisher == "" {
				return errors.New("--publisher is required")
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("ttl") {
				ttl = cfg.Auth.TokenTTL
			}
			if ttl <= 0 {
				return fmt.Errorf("invalid token lifetime %s", ttl)
			}

			middleware.SetJWTSecret(cfg.Auth.JWTSecret)
			token, err := middleware.GenerateToken(publisher, scopes, ttl)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "Token for %s expires at %s\n", publisher, time.Now().Add(ttl).UTC().Format(time.RFC3339))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"), "Configuration file")
	flags.StringVar(&publisher, "publisher", "", "Publisher the token is issued to")
	flags.StringSliceVar(&scopes, "scope", []string{middleware.ScopeWrite}, "Scopes granted to the token")
	flags.DurationVar(&ttl, "ttl", 0, "Token lifetime (defaults to auth.tokenTTL)")

	return cmd
}
