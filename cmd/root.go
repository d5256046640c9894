package cmd

import (
	"fmt"
	"io"
	"os"

	"hdrfmt/pkg/clipboard"
	"hdrfmt/pkg/config"
	"hdrfmt/pkg/errors"
	"hdrfmt/pkg/logger"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const (
	unknownValue = "unknown"
)

var (
	Version   string
	BuildTime string
	GitCommit string
)

// Process boundaries, swapped out in tests.
var (
	systemClipboard clipboard.Clipboard = clipboard.NewSystem()
	stdin           io.Reader           = os.Stdin
	stdinIsTerminal                     = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
)

var logLevel string
var configPath string

// appConfig is loaded once per invocation by the root PersistentPreRunE.
var appConfig *config.Config

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hdrfmt",
		Short: "HTTP header formatter",
		Long: `Reformat HTTP headers pasted from a browser network panel.

Developer tools copy request headers as alternating lines, the name on one
line and the value on the next. hdrfmt pairs those lines up and prints one
"Name: Value" line per header, optionally copying the result to the clipboard
or serving the same formatter as a single web page.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Set log level: explicit flag takes precedence over env var
			level := logLevel
			if !cmd.Flags().Changed("log-level") {
				if envLevel := os.Getenv("HDRFMT_LOG_LEVEL"); envLevel != "" {
					level = envLevel
				}
			}
			logger.SetLevel(level)

			cfg, err := config.Load(configPath)
			if err != nil {
				return errors.Wrap(err, "Failed to load configuration")
			}
			appConfig = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is $XDG_CONFIG_HOME/hdrfmt/config.yaml)")

	RegisterCommands(root)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			ver := Version
			if ver == "" {
				ver = "dev"
			}
			bt := BuildTime
			if bt == "" {
				bt = unknownValue
			}
			gc := GitCommit
			if gc == "" {
				gc = unknownValue
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "hdrfmt version %s\n", ver)
			fmt.Fprintf(out, "Built: %s\n", bt)
			fmt.Fprintf(out, "Git commit: %s\n", gc)
		},
	}
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		exitCode := errors.HandleReturn(err)
		os.Exit(int(exitCode))
	}
}
