package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"talk/errors"
	"talk/infrastructure/grpc/server"
	"talk/infrastructure/local"
	"talk/internal"
	"talk/moderation"
	pb "talk/proto/talk"
	"talk/repositories"
	"talk/runtime"
	"talk/services"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	grpc3 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
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
// Deferred cleanups (database, fan-out) run before the process exits.
func run() (int, error) {
	mintFor := flag.String("mint-token", "", "print a custom token for this user id and exit")
	mintValidity := flag.Duration("mint-validity", time.Hour, "validity of the minted custom token")
	flag.Parse()

	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.ServerConfig
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		url := fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint)
		logger.Info("Debug Badger inspector available", "url", url)
		database.StartDebugServer(db, config.DebugPort, endpoint, RecordMapper)
	}

	// 3. Moderation & Backend
	moderator, err := buildModerator(config, charReplacement, logger)
	if err != nil {
		return exitConfig, err
	}
	backend, err := local.NewBackend(logger, db, local.Options{
		TokenSecret:   config.AuthTokenSecret,
		TokenDuration: config.AuthTokenDuration,
		Policy: services.AuthPolicy{
			EmailPassword: config.EnableEmailPassword,
			Anonymous:     config.EnableAnonymous,
		},
		Moderator:            moderator,
		BufferSize:           config.BufferSize,
		ConnectionBufferSize: config.ConnectionBufferSize,
		SinkTimeout:          config.SinkTimeout,
		RestartInterval:      config.RestartInterval,
	})
	if err != nil {
		return exitConfig, err
	}

	if *mintFor != "" {
		token, err := backend.Tokens.GenerateCustomToken(*mintFor, *mintValidity)
		if err != nil {
			return exitRuntime, err
		}
		fmt.Println(token)
		return exitOK, nil
	}

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)

	// 5. Start the fan-out
	logger.Info("Starting document fan-out...")
	backend.Start(ctx)

	// 6. gRPC Server Setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc3.UnaryLoggingInterceptor(logger),
			server.APIKeyInterceptor(config.APIKey),
			server.AuthInterceptor(backend.Auth),
		),
		grpc.ChainStreamInterceptor(
			server.APIKeyStreamInterceptor(config.APIKey),
			server.AuthStreamInterceptor(backend.Auth),
		))
	pb.RegisterAuthServiceServer(s, server.NewAuthServer(logger, backend.Auth))
	pb.RegisterDocumentStoreServer(s, server.NewStoreServer(logger, backend.Documents, config.ConnectionBufferSize))

	go func() {
		logger.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
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
		backend.Stop()
		return exitRuntime, err
	}

	// 8. Graceful Shutdown
	// Active subscriptions end when their stream context is cancelled.
	logger.Info("Shutting down gracefully...")
	s.GracefulStop()
	backend.Stop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.ServerConfig, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}

// buildModerator merges CENSORED_WORDS with the dictionaries of
// CENSORED_WORDS_DIR. Without any word, moderation is off.
func buildModerator(config internal.ServerConfig, charReplacement rune, logger *slog.Logger) (*moderation.Moderator, error) {
	var loader *runtime.CensoredLoader
	if config.CensoredWordsDir != "" {
		loader = runtime.NewCensoredLoader(os.DirFS(config.CensoredWordsDir))
	} else {
		loader = runtime.NewCensoredLoader(nil)
	}
	data, err := loader.LoadAll(".", config.CensoredWordList()...)
	if errors.Is(err, errors.ErrEmptyWords) {
		logger.Info("Moderation disabled, no censored words")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("censored words: %w", err)
	}
	logger.Info("Moderation enabled", "words", len(data.Words), "languages", data.Languages)
	return moderation.NewModerator(data.Words, charReplacement, logger)
}

// RecordMapper shows users and documents in the debug inspector.
func RecordMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	record := repositories.Inspect(key, val)
	row.Type = record.Kind
	row.EntityID = record.EntityID
	row.Namespace = record.Namespace
	row.Detail = record.Detail
	if !record.Timestamp.IsZero() {
		row.Timestamp = record.Timestamp.Format(time.RFC3339)
	}
	return row
}
