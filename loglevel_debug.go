//go:build bringup_debug

package main

import "log/slog"

// Debug builds log every frame with its decoded register.
const logLevel = slog.LevelDebug
