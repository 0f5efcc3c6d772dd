// Package clip copies generated strings to the OS clipboard.
package clip

import (
	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
)

// Writer places text on a clipboard.
type Writer interface {
	Write(text string) error
}

// System returns a Writer backed by the OS clipboard.
func System() Writer {
	return systemWriter{}
}

type systemWriter struct{}

func (systemWriter) Write(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(err, "failed to set OS clipboard contents")
	}

	return nil
}
