package main

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/fitsense/internal/cli"
	"github.com/terraincognita07/fitsense/internal/config"
)

// newRootCommand serves the API when run without a subcommand.
func newRootCommand() *cobra.Command {
	var configPath string
	var cfg config.Config

	rootCmd := &cobra.Command{
		Use:           "fitsense",
		Short:         "fitsense scores nutrition and training adherence and health risk",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.LoadFromFile(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to the YAML config file")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "recompute-totals",
		Short: "Rebuild stored daily food and workout totals from their entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunRecomputeTotalsCommand(cfg.DB.Path, cmd.OutOrStdout())
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "generate-secret",
		Short: "Print a random signing key for SECRET_KEY",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunGenerateSecretCommand(cmd.OutOrStdout())
		},
	})

	var email string
	var ttl time.Duration
	issueTokenCmd := &cobra.Command{
		Use:   "issue-token",
		Short: "Print a bearer token for an account, creating it when missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(email) == "" {
				return errors.New("--email is required")
			}
			lifetime := ttl
			if lifetime == 0 {
				lifetime = cfg.Auth.TokenTTL
			}
			if lifetime <= 0 {
				return errors.New("--ttl must be positive")
			}
			secret, err := cfg.ResolveSecretKey()
			if err != nil {
				return err
			}
			return cli.RunIssueTokenCommand(cfg.DB.Path, secret, email, lifetime, cmd.OutOrStdout())
		},
	}
	issueTokenCmd.Flags().StringVar(&email, "email", "", "Account email")
	issueTokenCmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (defaults to auth.token_ttl)")
	rootCmd.AddCommand(issueTokenCmd)

	return rootCmd
}
