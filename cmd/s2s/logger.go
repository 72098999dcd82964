// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"io"
	"log"
	"log/slog"
)

// Indexed by the -logger option; other values select Warn.
var logLevels = []slog.Level{slog.LevelDebug, slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}

// plainHandler writes "LEVEL: message" lines, attributes are dropped.
type plainHandler struct {
	slog.Handler
	l *log.Logger
}

func (h *plainHandler) Handle(_ context.Context, r slog.Record) error {
	h.l.Println(r.Level.String()+":", r.Message)
	return nil
}

func NewLogger(out io.Writer, level int) *slog.Logger {
	l := slog.LevelWarn
	if level >= 0 && level < len(logLevels) {
		l = logLevels[level]
	}
	return slog.New(&plainHandler{
		Handler: slog.NewTextHandler(out, &slog.HandlerOptions{Level: l}),
		l:       log.New(out, "", 0),
	})
}
