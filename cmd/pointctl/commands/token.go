package commands

import (
	"errors"
	"fmt"

	"github.com/greenpoint/backend/pkg/auth"

	"github.com/spf13/cobra"
)

func tokenCmd(opts *rootOptions) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin token for catalog writes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.cfg.SigningKey == "" {
				return errors.New("JWT_SIGNING_KEY is not set")
			}

			manager, err := auth.NewManager(opts.cfg.SigningKey, opts.cfg.TokenTTL)
			if err != nil {
				return err
			}

			token, _, err := manager.NewJWT(subject, auth.RoleAdmin)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "admin", "token subject")
	return cmd
}
