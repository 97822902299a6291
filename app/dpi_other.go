//go:build !windows

package app

import "log/slog"

// EnableDPIAwareness is a no-op outside Windows.
func EnableDPIAwareness(*slog.Logger) {}
