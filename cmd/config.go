package cmd

import (
	"fmt"
	"os"
	"strings"

	"hdrfmt/pkg/config"
	"hdrfmt/pkg/errors"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage hdrfmt configuration",
		Long:  `Show, locate or create the hdrfmt configuration file.`,
	}

	configCmd.AddCommand(newConfigShowCmd(), newConfigPathCmd(), newConfigInitCmd())
	return configCmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  `Display the effective configuration after environment overrides.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := appConfig
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Current Configuration:")
			fmt.Fprintln(out, "======================")
			fmt.Fprintf(out, "Output: %s\n", cfg.Style())
			fmt.Fprintf(out, "Canonical names: %t\n", cfg.Canonical)
			fmt.Fprintf(out, "Mask secrets: %t\n", cfg.Mask)
			fmt.Fprintf(out, "Extra sensitive headers: %s\n", func() string {
				if len(cfg.SensitiveHeaders) == 0 {
					return "(none)"
				}
				return strings.Join(cfg.SensitiveHeaders, ", ")
			}())
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Serve address: %s\n", cfg.Serve.Addr)
			fmt.Fprintf(out, "Max request body: %d bytes\n", cfg.Serve.MaxBodyBytes)
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath()
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil && !force {
				return errors.NewWithSuggestion(errors.ExitCodeConfig,
					fmt.Sprintf("Config file already exists: %s", path),
					"Use --force to overwrite it.")
			}

			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return "", errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
	}
	return path, nil
}
