package commands

import (
	"fmt"
	"os"
	"time"

	"hospital-reception-backend/pkg/utils"

	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		secret  string
		subject string
		role    string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a service token for an agent",
		Long: `Signs a bearer token the API accepts when SERVICE_TOKEN_SECRET is set.
The secret defaults to the SERVICE_TOKEN_SECRET environment variable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				secret = os.Getenv("SERVICE_TOKEN_SECRET")
			}
			if ttl <= 0 {
				return fmt.Errorf("--ttl must be positive, got %s", ttl)
			}

			token, err := utils.SignServiceToken(secret, subject, role, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "Signing secret (default $SERVICE_TOKEN_SECRET)")
	cmd.Flags().StringVar(&subject, "subject", "agent", "Token subject")
	cmd.Flags().StringVar(&role, "role", "agent", "Token role")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	return cmd
}

func newAPIKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apikey",
		Short: "Generate an API key and its bcrypt hash",
		Long: `Prints a new API key for the caller and the hash to append to
SERVICE_API_KEY_HASHES. Only the hash is stored server-side.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, hash, err := utils.GenerateAPIKey()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "key:  %s\n", key)
			fmt.Fprintf(out, "hash: %s\n", hash)
			return nil
		},
	}
}
