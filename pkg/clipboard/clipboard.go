// Package clipboard wraps the host clipboard behind a small interface so
// commands can be tested without a display server.
package clipboard

import (
	atotto "github.com/atotto/clipboard"
)

// Copier writes text to a clipboard.
type Copier interface {
	Copy(text string) error
}

// Reader reads text from a clipboard.
type Reader interface {
	Paste() (string, error)
}

// Clipboard is both ends of a clipboard.
type Clipboard interface {
	Copier
	Reader
}

// System is the host clipboard. On Linux it shells out to xclip, xsel or
// wl-clipboard, whichever is installed.
type System struct{}

// NewSystem returns the host clipboard.
func NewSystem() *System {
	return &System{}
}

func (System) Copy(text string) error {
	return atotto.WriteAll(text)
}

func (System) Paste() (string, error) {
	return atotto.ReadAll()
}

// Memory is an in-process clipboard.
type Memory struct {
	Text string
	Err  error
}

func (m *Memory) Copy(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	return nil
}

func (m *Memory) Paste() (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}

var (
	_ Clipboard = (*System)(nil)
	_ Clipboard = (*Memory)(nil)
)
