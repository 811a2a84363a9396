package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestSetupVerboseEnablesDebug(t *testing.T) {
	Setup(true)

	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("verbose setup should enable debug level")
	}
}

func TestSetupDefaultSuppressesDebug(t *testing.T) {
	Setup(false)

	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("default setup should not enable debug level")
	}
	if !slog.Default().Enabled(context.Background(), slog.LevelInfo) {
		t.Error("default setup should enable info level")
	}
}
