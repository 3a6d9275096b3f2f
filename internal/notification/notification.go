// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"sync"

	"github.com/gen2brain/beeep"

	"github.com/zhubert/manus/internal/i18n"
	"github.com/zhubert/manus/internal/logger"
)

// AppName is the notification title.
const AppName = "Manus AI"

// previewLimit caps the reply text shown in a notification body.
const previewLimit = 80

// notifyFunc matches beeep.Notify.
type notifyFunc func(title, message string, icon any) error

var (
	mu     sync.Mutex
	notify notifyFunc = beeep.Notify
)

// SetNotifier replaces the notification backend. Tests use it to avoid
// sending real notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	mu.Lock()
	defer mu.Unlock()
	notify = fn
}

// ResetNotifier restores the beeep backend.
func ResetNotifier() {
	SetNotifier(beeep.Notify)
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)

	mu.Lock()
	fn := notify
	mu.Unlock()

	// Empty icon lets beeep use the platform default
	if err := fn(title, message, ""); err != nil {
		log.Warn("failed to send notification", "error", err)
		return err
	}
	return nil
}

// ReplyReady tells the user a reply arrived while they were on another
// screen. The body starts with the reply itself.
func ReplyReady(t i18n.Translator, reply string) error {
	body := t.T("newReplyNotification")
	if preview := truncate(reply, previewLimit); preview != "" {
		body += ": " + preview
	}
	return Send(AppName, body)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
