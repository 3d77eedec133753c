package commands

import (
	"context"

	"github.com/greenpoint/backend/internal/apiclient"
	"github.com/greenpoint/backend/internal/config"
	"github.com/greenpoint/backend/pkg/logger"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	cfg    *config.ClientConfig
	apiURL string
	client *apiclient.Client
}

func Execute(ctx context.Context) error {
	return newRootCmd(config.MustLoadClient()).ExecuteContext(ctx)
}

func newRootCmd(cfg *config.ClientConfig) *cobra.Command {
	opts := &rootOptions{cfg: cfg}

	root := &cobra.Command{
		Use:          "pointctl",
		Short:        "Register collection points against the Green Point API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := logger.Init("", opts.cfg.LogLevel); err != nil {
				return err
			}
			if opts.apiURL == "" {
				opts.apiURL = opts.cfg.APIBaseURL
			}
			opts.client = apiclient.New(opts.apiURL, opts.cfg.Timeout)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.apiURL, "api", "", "API base URL (default $POINTCTL_API_URL)")

	root.AddCommand(registerCmd(opts), itemsCmd(opts), tokenCmd(opts))
	return root
}
