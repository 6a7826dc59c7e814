package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/clank/internal/adapters/logger"
)

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{
			name:       "info level",
			level:      slog.LevelInfo,
			msg:        "information message",
			goldenName: "handler_info",
		},
		{
			name:       "warn level",
			level:      slog.LevelWarn,
			msg:        "warning message",
			goldenName: "handler_warn",
		},
		{
			name:       "error level",
			level:      slog.LevelError,
			msg:        "error message",
			goldenName: "handler_error",
		},
		{
			name:       "debug level filtered",
			level:      slog.LevelDebug,
			msg:        "debug message",
			goldenName: "handler_debug_filtered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			handler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			})
			lg := slog.New(handler)

			lg.Log(context.Background(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_WithAttrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	handler := logger.NewPrettyHandler(buf, nil)
	lg := slog.New(handler).With("file", "main.cpp", "line", 12)

	lg.Info("attrs message")
	assert.Equal(t, "attrs message file=main.cpp line=12\n", buf.String())
}

func TestPrettyHandler_WithGroup(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	handler := logger.NewPrettyHandler(buf, nil)
	lg := slog.New(handler).WithGroup("pch")

	lg.Info("group message", "stage", "create")
	assert.Equal(t, "group message pch.stage=create\n", buf.String())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	levelVar := &slog.LevelVar{}
	levelVar.Set(slog.LevelInfo)

	handler := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{
		Level: levelVar,
	})

	assert.False(t, handler.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelInfo))

	// A shared LevelVar toggles the handler after construction.
	levelVar.Set(slog.LevelDebug)
	assert.True(t, handler.Enabled(context.Background(), slog.LevelDebug))
}
