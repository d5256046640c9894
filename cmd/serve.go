package cmd

import (
	"os/signal"
	"syscall"

	"hdrfmt/pkg/errors"
	"hdrfmt/pkg/web"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the header formatter as a web page",
		Long: `Serve a single page with an input box, an output box and Format and
Copy buttons. The page calls POST /api/format, which accepts
{"input": "...", "canonical": false, "mask": false}.`,
		Example: `  hdrfmt serve
  hdrfmt serve --addr :9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := web.Options{
				Addr:             appConfig.Serve.Addr,
				MaxBodyBytes:     appConfig.Serve.MaxBodyBytes,
				SensitiveHeaders: appConfig.SensitiveHeaders,
			}
			if cmd.Flags().Changed("addr") {
				opts.Addr = addr
			}

			srv, err := web.New(opts)
			if err != nil {
				return errors.ServerError(err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := srv.ListenAndServe(ctx); err != nil && ctx.Err() == nil {
				return errors.ServerError(err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, 127.0.0.1:8080)")
	return cmd
}
