package clip

import (
	"fmt"

	"golang.design/x/clipboard"
)

type systemBackend struct{}

// New initialises the system clipboard and returns a backend for it.
// Initialisation failure is returned to the caller: commands that capture or
// write the clipboard treat it as fatal, since the program has no purpose
// without clipboard access.
func New() (Backend, error) {
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("clipboard init: %w", err)
	}
	return systemBackend{}, nil
}

func (systemBackend) Name() string { return "system clipboard" }

func (systemBackend) ReadText() (string, error) {
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return "", ErrNoText
	}
	return string(data), nil
}

func (systemBackend) WriteText(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (systemBackend) Close() {}
