package test

import (
	"bytes"
	"io"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDummyLogger(t *testing.T) {
	cases := []struct {
		description string
		given       func(*zap.Logger)
		writer      func() io.Writer
		reader      func(io.Writer) string
		output      string
	}{
		{
			"capture logs into a buffer from Zap",
			func(l *zap.Logger) {
				l.Info("test")
			},
			func() io.Writer {
				return &bytes.Buffer{}
			},
			func(w io.Writer) string {
				return w.(*bytes.Buffer).String()
			},
			`INFO	test`,
		},
		{
			"capture debug logs into a buffer from Zap",
			func(l *zap.Logger) {
				l.Debug("test")
			},
			func() io.Writer {
				return &bytes.Buffer{}
			},
			func(w io.Writer) string {
				return w.(*bytes.Buffer).String()
			},
			`DEBUG	test`,
		},
		{
			"capture logs into a buffer redirected from default Go log package",
			func(l *zap.Logger) {
				log.Println("test")
			},
			func() io.Writer {
				return &bytes.Buffer{}
			},
			func(w io.Writer) string {
				return w.(*bytes.Buffer).String()
			},
			`test`,
		},
		{
			"capture logs info a buffer from Zap and default Go log package",
			func(l *zap.Logger) {
				l.Info("test")
				log.Println("test2")
			},
			func() io.Writer {
				return &bytes.Buffer{}
			},
			func(w io.Writer) string {
				return w.(*bytes.Buffer).String()
			},
			"test\nINFO\ttest2",
		},
		{
			"capture logs from Zap and discard the content",
			func(l *zap.Logger) {
				l.Info("test")
			},
			func() io.Writer {
				return io.Discard
			},
			func(w io.Writer) string {
				return ""
			},
			``,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			w := tc.writer()

			actual := DummyLogger(w)

			tc.given(actual)
			s := tc.reader(w)

			assert.NotNil(t, actual)
			assert.IsType(t, &zap.Logger{}, actual)
			assert.Contains(t, s, tc.output)
		})
	}

}

func TestEnvironment(t *testing.T) {
	t.Setenv("MCP_CLIENT_SECRET", "test123")
	t.Setenv("ENV_FILE", "test.env")

	Environment(t, map[string]string{"MCP_BASE_URL": "http://localhost:5000"})

	_, found := os.LookupEnv("MCP_CLIENT_SECRET")
	assert.False(t, found)
	_, found = os.LookupEnv("ENV_FILE")
	assert.False(t, found)
	assert.Equal(t, "http://localhost:5000", os.Getenv("MCP_BASE_URL"))
}
