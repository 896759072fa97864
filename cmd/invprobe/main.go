package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/app-sre/invprobe/pkg/cmd"
)

func main() {
	config := zap.NewDevelopmentConfig()
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(s)); err != nil {
			log.Fatalf("Unable to parse log level: %s", err)
		}
		config.Level = zap.NewAtomicLevelAt(level)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	l, err := config.Build()
	if err != nil {
		log.Fatalf("Unable to initialize Zap logger: %s", err)
	}
	defer func() { _ = l.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := l.Sugar()
	if err := cmd.NewRootCommand(logger).ExecuteContext(ctx); err != nil {
		logger.Fatalf("Unable to run invprobe: %s", err)
	}
}
