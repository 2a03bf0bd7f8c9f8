package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nsien-prestige/Eventful-Backend/internal/middleware"
	"github.com/nsien-prestige/Eventful-Backend/internal/signing"
	"github.com/spf13/cobra"
)

func secretFromEnv(name string) (string, error) {
	secret := os.Getenv(name)
	if secret == "" {
		return "", fmt.Errorf("environment variable %s is empty", name)
	}
	return secret, nil
}

// signCmd prints the webhook signature header value for a payload, for
// replaying gateway notifications by hand.
func signCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign [file]",
		Short: "Sign a webhook body the way the payment gateway does (reads stdin without a file)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			envName, _ := cmd.Flags().GetString("secret-env")
			secret, err := secretFromEnv(envName)
			if err != nil {
				return err
			}

			var body []byte
			if len(args) == 1 {
				body, err = os.ReadFile(args[0])
			} else {
				body, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read body: %w", err)
			}

			signer, err := signing.NewSHA512(secret)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signer.SignHex(body))
			return nil
		},
	}

	cmd.Flags().String("secret-env", "PAYSTACK_SECRET_KEY", "Environment variable holding the gateway secret")

	return cmd
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token [user-id]",
		Short: "Issue a bearer token for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			envName, _ := cmd.Flags().GetString("secret-env")
			secret, err := secretFromEnv(envName)
			if err != nil {
				return err
			}
			email, _ := cmd.Flags().GetString("email")
			roles, _ := cmd.Flags().GetStringSlice("role")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			token, err := middleware.IssueToken([]byte(secret), args[0], email, roles, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().String("secret-env", "JWT_SECRET", "Environment variable holding the JWT secret")
	cmd.Flags().String("email", "", "Email claim")
	cmd.Flags().StringSlice("role", nil, "Role claims (repeatable)")
	cmd.Flags().Duration("ttl", time.Hour, "Token lifetime")

	return cmd
}
