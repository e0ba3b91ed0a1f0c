package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harentsoaR/dental-care-api/internal/config"
	"github.com/harentsoaR/dental-care-api/internal/utils"
)

func promoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote [email]",
		Short: "Grant the admin role to an identity, creating it if needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			repos, closeStore, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore(context.Background())

			res, err := repos.Users.EnsureAdmin(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is admin (matched %d, modified %d, created %d)\n",
				args[0], res.MatchedCount, res.ModifiedCount, res.UpsertedCount)
			return nil
		},
	}
}

func tokenCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "token [email]",
		Short: "Print a bearer token for an email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			token, err := utils.NewTokenService(cfg.JWTSecret).Issue(utils.Claims{Email: args[0], Name: name})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "display name to embed in the token")
	return cmd
}
