// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"dochub/internal/logger"
)

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	logger.Debug("Notification: sending - title=%q, message=%q", title, message)
	// Use empty string for icon - beeep handles platform defaults
	err := beeep.Notify(title, message, "")
	if err != nil {
		logger.Warn("Notification: failed to send: %v", err)
	}
	return err
}

// DownloadsFinished notifies that a bulk download batch has settled.
func DownloadsFinished(succeeded, failed int) error {
	if failed == 0 {
		return Send("Doc Hub", fmt.Sprintf("%d downloads finished", succeeded))
	}
	return Send("Doc Hub", fmt.Sprintf("%d downloads finished, %d failed", succeeded, failed))
}
