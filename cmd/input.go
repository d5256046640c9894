package cmd

import (
	"io"
	"os"

	"hdrfmt/pkg/errors"
)

// inputSource selects where raw header text comes from.
type inputSource struct {
	paste bool
	args  []string
}

// read returns the raw header text from the clipboard, a file argument or
// stdin. "-" names stdin explicitly.
func (s inputSource) read() (string, error) {
	if s.paste {
		if len(s.args) > 0 {
			return "", errors.ValidationError("--paste cannot be combined with a file argument")
		}
		text, err := systemClipboard.Paste()
		if err != nil {
			return "", errors.ClipboardError(errors.ErrMsgClipboardRead, err)
		}
		return text, nil
	}

	if len(s.args) == 1 && s.args[0] != "-" {
		data, err := os.ReadFile(s.args[0])
		if err != nil {
			return "", errors.FileError(s.args[0], err)
		}
		return string(data), nil
	}

	if len(s.args) == 0 && stdinIsTerminal() {
		return "", errors.NoInputError()
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", errors.NewWithError(errors.ExitCodeFileOperation, errors.ErrMsgReadInput, err)
	}
	return string(data), nil
}
