//go:build !bringup_debug

package main

import "log/slog"

const logLevel = slog.LevelInfo
