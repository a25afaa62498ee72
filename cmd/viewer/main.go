package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"timebank/internal"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	DebugPort      int    `env:"DEBUG_PORT,default=8081"`
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
}

func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Open Badger in Read-Only mode
	// BypassLockGuard allows opening while the server holds the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// 3. Start the inspector only, no heartbeat runs here
	started := time.Now()
	stats := func() map[string]any {
		return map[string]any{
			"Status": "Viewer Mode (Read-Only)",
			"Uptime": time.Since(started).Round(time.Second).String(),
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Viewer started at http://localhost:%d/inspect\n", config.DebugPort)
	internal.StartDebugServer(ctx, logger, internal.NewDebugServer(db, config.DebugPort, "/inspect", internal.DefaultMapper, stats))
	<-ctx.Done()
}
