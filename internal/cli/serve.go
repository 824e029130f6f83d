package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Belphemur/ShowBrowser/v2/internal/app"
	"github.com/Belphemur/ShowBrowser/v2/internal/config"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetConfig()
			if port, _ := cmd.Flags().GetInt("port"); port != 0 {
				cfg.Server.Port = port
			}

			a, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.Run(ctx)
		},
	}
	cmd.Flags().Int("port", 0, "listen port (overrides server.port)")
	return cmd
}
