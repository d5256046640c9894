package cmd

import (
	"fmt"
	"io"
	"strings"

	"hdrfmt/pkg/errors"
	"hdrfmt/pkg/headers"
	"hdrfmt/pkg/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const copiedMessage = "✓ Copied to clipboard!"

// transformFlags are shared by format and copy. Unset flags fall back to
// the loaded config.
type transformFlags struct {
	canonical bool
	mask      bool
}

func (f *transformFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.canonical, "canonical", false, "Rewrite header names in canonical form (content-type -> Content-Type)")
	cmd.Flags().BoolVar(&f.mask, "mask", false, "Mask values of sensitive headers such as Authorization and Cookie")
}

func (f *transformFlags) transforms(cmd *cobra.Command) []headers.Transform {
	cfg := *appConfig
	if cmd.Flags().Changed("canonical") {
		cfg.Canonical = f.canonical
	}
	if cmd.Flags().Changed("mask") {
		cfg.Mask = f.mask
	}
	return cfg.Transforms()
}

// formatPairs parses raw and applies transforms, logging what was dropped.
func formatPairs(raw string, transforms []headers.Transform) []headers.Pair {
	pairs, stats := headers.ParseWithStats(raw)
	logger.Debug().
		Int("lines", stats.Lines).
		Int("non_blank", stats.NonBlank).
		Int("pairs", stats.Pairs).
		Int("dropped", stats.Dropped).
		Msg("parsed header input")
	return headers.Apply(pairs, transforms...)
}

// OutputWithCopy prints content and, if shouldCopy is set, also puts it on
// the clipboard followed by an acknowledgment line.
func OutputWithCopy(w io.Writer, content string, shouldCopy bool) error {
	if content != "" {
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		if _, err := fmt.Fprint(w, content); err != nil {
			return errors.NewWithError(errors.ExitCodeGeneral, "failed to write output", err)
		}
	}

	if shouldCopy {
		return copyWithMessage(w, strings.TrimRight(content, "\n"))
	}
	return nil
}

// copyWithMessage copies text to the clipboard and acknowledges it.
func copyWithMessage(w io.Writer, text string) error {
	if err := systemClipboard.Copy(text); err != nil {
		return errors.ClipboardError(errors.ErrMsgClipboardCopy, err)
	}
	green := color.New(color.FgGreen)
	_, _ = green.Fprintln(w, copiedMessage)
	return nil
}
