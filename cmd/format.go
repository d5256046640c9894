package cmd

import (
	"strings"

	"hdrfmt/pkg/errors"
	"hdrfmt/pkg/headers"

	"github.com/spf13/cobra"
)

type formatOptions struct {
	transformFlags
	output string
	copy   bool
	paste  bool
}

func newFormatCmd() *cobra.Command {
	opts := &formatOptions{}

	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Format pasted headers as Name: Value lines",
		Long: `Read alternating header name and value lines and print one
"Name: Value" line per header.

Blank lines are ignored before pairing. A trailing name with no value is
dropped silently.`,
		Example: `  # From a file
  hdrfmt format headers.txt

  # From stdin
  pbpaste | hdrfmt format

  # From the clipboard, back to the clipboard
  hdrfmt format --paste --copy

  # As curl flags with secrets hidden
  hdrfmt format --output curl --mask headers.txt`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveDefault
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, opts, args)
		},
	}

	opts.transformFlags.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output style ("+strings.Join(headers.ValidStyles(), ", ")+")")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Also copy the output to the clipboard")
	cmd.Flags().BoolVar(&opts.paste, "paste", false, "Read input from the clipboard")
	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return headers.ValidStyles(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runFormat(cmd *cobra.Command, opts *formatOptions, args []string) error {
	style := appConfig.Style()
	if cmd.Flags().Changed("output") {
		s, err := headers.ParseStyle(opts.output)
		if err != nil {
			return errors.NewWithSuggestion(errors.ExitCodeValidation, err.Error(), "Use --output with one of: "+strings.Join(headers.ValidStyles(), ", "))
		}
		style = s
	}

	raw, err := inputSource{paste: opts.paste, args: args}.read()
	if err != nil {
		return err
	}

	pairs := formatPairs(raw, opts.transforms(cmd))
	rendered, err := headers.Render(pairs, style)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeGeneral, errors.ErrMsgRender, err)
	}

	return OutputWithCopy(cmd.OutOrStdout(), rendered, opts.copy)
}
