package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	jwttoken "licensedecoder/internal/jwt_token"
	"licensedecoder/internal/platform/config"
)

var errNoSigningKey = errors.New("LICENSE_DECODER_JWT_SIGNING_KEY is not set")

type tokenOptions struct {
	clientID string
	ttl      time.Duration
}

func newTokenCmd() *cobra.Command {
	var opts tokenOptions

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for the decode API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromEnv()
			if cfg.JWTSigningKey == "" {
				return errNoSigningKey
			}
			svc := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTIssuer)
			token, err := svc.GenerateAccessToken(opts.clientID, opts.ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&opts.clientID, "client-id", "", "client identifier carried by the token")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("client-id")
	return cmd
}
