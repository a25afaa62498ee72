package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	pb "timebank/api/v1"
	"timebank/auth"
	"timebank/infrastructure/grpc/server"
	"timebank/infrastructure/search"
	"timebank/internal"
	"timebank/repositories"
	"timebank/runtime/workers"
	"timebank/services"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"

	grpc3 "github.com/mama165/sdk-go/grpc"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// Returning instead of exiting lets every deferred Close run before the process ends.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	auth.SetSigningKey(config.AuthSecret)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Database (BadgerDB), always holding the accounts and profiles
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Conversation and availability store
	store, closeStore, err := buildStore(ctx, config, db, logger)
	if err != nil {
		return exitRuntime, err
	}
	defer closeStore()

	// 4. Directory index (Bluge)
	index, err := search.NewDirectoryIndex(bluge.DefaultConfig(config.BlugeFilepath), logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge index: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = index.Close()
	}()

	userRepository := repositories.NewUserRepository(db)
	availabilityRepository := repositories.NewAvailabilityRepository(store, logger)
	conversationRepository := repositories.NewConversationRepository(store, logger)

	authService := services.NewAuthService(userRepository, config.AuthTokenDuration)
	availabilityService := services.NewAvailabilityService(logger, availabilityRepository)
	conversationStore := services.NewConversationStore(logger, conversationRepository)
	profileService := services.NewProfileService(logger, userRepository, availabilityRepository,
		index, config.DirectorySearchLimit)

	if err = profileService.Reindex(ctx); err != nil {
		return exitRuntime, fmt.Errorf("directory reindex failed: %w", err)
	}

	// 5. Background workers
	heartbeat := workers.NewHeartbeatWorker(logger, config.HeartbeatInterval)
	sup := workers.NewSupervisor(logger, config.RestartInterval)
	sup.Add(heartbeat)
	workersDone := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(workersDone)
	}()
	// Workers are drained before the stores close
	defer func() {
		sup.Stop()
		<-workersDone
		logger.Info("Workers stopped")
	}()

	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available",
			"url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		debugServer := internal.NewDebugServer(db, config.DebugPort, endpoint, internal.DefaultMapper, heartbeat.Snapshot)
		internal.StartDebugServer(ctx, logger, debugServer)
	}

	// 6. gRPC Server Setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc3.UnaryLoggingInterceptor(logger),
			auth.AuthInterceptor,
		))
	pb.RegisterAccountServiceServer(s, server.NewAccountServer(authService))
	pb.RegisterProfileServiceServer(s, server.NewProfileServer(profileService))
	pb.RegisterAvailabilityServiceServer(s, server.NewAvailabilityServer(availabilityService))
	pb.RegisterChatServiceServer(s, server.NewChatServer(logger, conversationStore, profileService))

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting gRPC server", "address", address, "backend", config.StoreBackend, "at", time.Now().UTC())
		for serviceName := range s.GetServiceInfo() {
			logger.Debug("gRPC exposed services", "name", serviceName)
		}
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 8. Graceful Shutdown
	logger.Info("Shutting down gracefully...")
	s.GracefulStop()
	logger.Info("gRPC server stopped")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}
