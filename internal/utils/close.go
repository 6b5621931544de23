package utils

import (
	"io"
	"log/slog"
)

// CloseWithLog closes c and logs any close error instead of returning it.
// Used in defers where a close failure must not override the primary error.
func CloseWithLog(c io.Closer) {
	if err := c.Close(); err != nil {
		slog.Warn("failed to close resource", "error", err.Error())
	}
}
