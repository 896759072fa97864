//go:build integration
// +build integration

package test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/app-sre/invprobe/internal/test"
	"github.com/app-sre/invprobe/pkg/cmd"
)

func freeAddress(t *testing.T) string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	return l.Addr().String()
}

func createEnvironmentFile(t *testing.T, values map[string]string) string {
	var content bytes.Buffer
	for k, v := range values {
		fmt.Fprintf(&content, "%s=%s\n", k, v)
	}

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, content.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func startFixture(t *testing.T, addr string) {
	ctx, cancel := context.WithCancel(context.Background())

	root := cmd.NewRootCommand(test.DummyLogger(io.Discard).Sugar())
	root.SetArgs([]string{"fixture", "--addr", addr})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = root.ExecuteContext(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		<-done
	})

	waitForPortOpen(addr)
}

func runCommand(t *testing.T, args ...string) (string, error) {
	var output bytes.Buffer

	root := cmd.NewRootCommand(test.DummyLogger(io.Discard).Sugar())
	root.SetOut(&output)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())

	return output.String(), err
}

func waitForPortOpen(addr string) {
	for {
		conn, err := net.DialTimeout("tcp", addr, 500*time.Millisecond)
		if err == nil {
			_ = conn.Close()
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
}
