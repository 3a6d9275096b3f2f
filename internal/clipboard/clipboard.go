// Package clipboard writes and reads text on the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/manus/internal/logger"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times; the first result is remembered.
func Init() error {
	initOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			logger.WithComponent("clipboard").Warn("failed to initialize", "error", err)
			initErr = fmt.Errorf("failed to initialize clipboard: %w", err)
			return
		}
		logger.WithComponent("clipboard").Debug("initialized")
	})
	return initErr
}

// WriteText places text on the clipboard.
func WriteText(text string) error {
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.WithComponent("clipboard").Debug("wrote text", "bytes", len(text))
	return nil
}

// ReadText reads text from the clipboard. An empty clipboard is not an error.
func ReadText() (string, error) {
	if err := Init(); err != nil {
		return "", err
	}
	data := clipboard.Read(clipboard.FmtText)
	if data == nil {
		return "", nil
	}
	return string(data), nil
}
