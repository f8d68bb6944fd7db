package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"talk/contract"
	"talk/credentials"
	"talk/feed"
	"talk/infrastructure/grpc/client"
	"talk/infrastructure/local"
	"talk/internal"
	"talk/provider"
	"talk/runtime"
	"talk/runtime/workers"
	"talk/services"
	"talk/session"
	"talk/shell"
	"talk/ui"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const restartInterval = 200 * time.Millisecond

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "talk terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := internal.LoadClientConfig()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Backend, remote or in process
	var authBackend contract.IAuthBackend
	var documentBackend contract.IDocumentBackend
	if config.Embedded {
		db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
		if err != nil {
			return exitRuntime, fmt.Errorf("database opening failed: %w", err)
		}
		defer func() { _ = db.Close() }()

		backend, err := local.NewBackend(logger, db, local.Options{
			TokenSecret:          config.TokenSecret,
			TokenDuration:        config.TokenTTL,
			Policy:               services.AuthPolicy{EmailPassword: true, Anonymous: true},
			BufferSize:           1024,
			ConnectionBufferSize: 16,
			SinkTimeout:          2 * time.Second,
			RestartInterval:      restartInterval,
		})
		if err != nil {
			return exitConfig, err
		}
		backend.Start(ctx)
		defer backend.Stop()
		authBackend, documentBackend = backend.AuthBackend(), backend.DocumentBackend()
		logger.Info("Running with an embedded backend")
	} else {
		conn, err := client.Dial(config.ServerAddr,
			grpc.WithUnaryInterceptor(client.LoggingInterceptor(logger, config.DebugJSON)))
		if err != nil {
			return exitRuntime, fmt.Errorf("failed to connect to %s: %w", config.ServerAddr, err)
		}
		defer func() { _ = conn.Close() }()
		authBackend = client.NewAuthClient(conn, config.APIKey)
		documentBackend = client.NewStoreClient(conn, config.APIKey)
		logger.Info("Connecting to server", "address", config.ServerAddr, "project_id", config.ProjectID)
	}

	// 3. Event loop
	loop := runtime.NewEventLoop(logger)
	supervisor := workers.NewSupervisor(logger, restartInterval)
	supervisor.Add(loop)
	go supervisor.Run(ctx)
	defer supervisor.Stop()

	// 4. Screens
	authProvider := provider.NewAuth(logger, authBackend)
	store := provider.NewStore(logger, documentBackend, authProvider)
	terminal := ui.NewTerminal(os.Stdin, os.Stdout, ui.NewTheme(config.Colours, config.OwnColour, config.OtherColour))
	app := shell.NewShell(logger,
		session.NewController(logger, authProvider, loop, config.InitialToken),
		credentials.NewForm(logger, authProvider),
		feed.NewFeed(logger, store, loop, config.AppID),
		loop,
		terminal,
	)
	app.Start(ctx)
	defer app.Stop()

	errChan := make(chan error, 1)
	go func() {
		errChan <- terminal.Run(ctx, app)
	}()

	select {
	case <-ctx.Done():
		return exitOK, nil
	case err := <-errChan:
		if err != nil {
			return exitRuntime, err
		}
		return exitOK, nil
	}
}
