// Package clipboard provides text copy to the system clipboard for chat
// messages and document links. Clipboard failures are logged, never
// surfaced to the user.
package clipboard

import (
	"fmt"

	"golang.design/x/clipboard"

	"dochub/internal/logger"
)

// initialized tracks whether the clipboard has been initialized
var initialized bool

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times.
func Init() error {
	if initialized {
		return nil
	}

	if err := clipboard.Init(); err != nil {
		logger.Warn("Clipboard: failed to initialize: %v", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}

	initialized = true
	logger.Debug("Clipboard: initialized")
	return nil
}

// WriteText copies text to the clipboard. Errors are logged and returned;
// callers show a flash on success and stay silent on failure.
func WriteText(text string) error {
	if !initialized {
		if err := Init(); err != nil {
			return err
		}
	}

	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.Debug("Clipboard: wrote %d bytes of text", len(text))
	return nil
}
