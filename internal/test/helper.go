package test

import (
	"io"
	"os"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DummyLogger writes to both stderr and w, at debug level.
func DummyLogger(w io.Writer) *zap.Logger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:  "message",
		LevelKey:    "level",
		EncodeLevel: zapcore.CapitalLevelEncoder,
	})

	writer := zap.CombineWriteSyncers(zapcore.AddSync(os.Stderr), zapcore.AddSync(w))

	l := zap.New(zapcore.NewCore(encoder, writer, zapcore.DebugLevel))
	zap.RedirectStdLog(l)

	return l
}

// Environment unsets every variable the command reads, then sets the given
// ones for the duration of the test.
func Environment(t *testing.T, values map[string]string) {
	t.Helper()

	names := []string{
		"MCP_BASE_URL",
		"MCP_CLIENT_ID",
		"MCP_CLIENT_SECRET",
		"REQUEST_TIMEOUT",
		"ENV_FILE",
		"ENVIRONMENT",
		"LOG_LEVEL",
	}
	for _, name := range names {
		t.Setenv(name, "")
		_ = os.Unsetenv(name)
	}

	for k, v := range values {
		t.Setenv(k, v)
	}
}
