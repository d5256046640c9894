package cmd

import (
	"hdrfmt/pkg/headers"

	"github.com/spf13/cobra"
)

type copyOptions struct {
	transformFlags
	paste bool
	quiet bool
}

func newCopyCmd() *cobra.Command {
	opts := &copyOptions{}

	cmd := &cobra.Command{
		Use:   "copy [file]",
		Short: "Format headers and copy the result to the clipboard",
		Long: `Format headers exactly like "hdrfmt format" and put the text result on
the clipboard. The formatted text is printed too unless --quiet is given,
and a confirmation line is always shown on success.`,
		Example: `  # Reformat whatever is on the clipboard in place
  hdrfmt copy --paste

  # Copy a file's headers, masking secrets
  hdrfmt copy --mask headers.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := inputSource{paste: opts.paste, args: args}.read()
			if err != nil {
				return err
			}

			text := headers.Join(formatPairs(raw, opts.transforms(cmd)))
			if opts.quiet {
				return copyWithMessage(cmd.OutOrStdout(), text)
			}
			return OutputWithCopy(cmd.OutOrStdout(), text, true)
		},
	}

	opts.transformFlags.register(cmd)
	cmd.Flags().BoolVar(&opts.paste, "paste", false, "Read input from the clipboard")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Only print the confirmation, not the formatted text")

	return cmd
}
