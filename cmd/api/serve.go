package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/interview-iq/internal/config"
	"alfredoptarigan/interview-iq/internal/handlers"
	"alfredoptarigan/interview-iq/internal/logger"
	"alfredoptarigan/interview-iq/internal/repositories"
	"alfredoptarigan/interview-iq/internal/server"
	"alfredoptarigan/interview-iq/internal/services"
)

var portFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&portFlag, "port", "p", "", "port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	applyFlags(cmd, cfg)

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync()

	log.Info("config loaded", zap.String("env", cfg.Server.Env), zap.String("provider", cfg.LLM.Provider))

	ctx := context.Background()

	client, err := services.NewCompletionClient(ctx, cfg)
	if err != nil {
		log.Error("failed to initialize completion client", zap.Error(err))
		return err
	}
	clientFields := []zap.Field{zap.String("provider", cfg.LLM.Provider)}
	if m, ok := client.(interface{ Model() string }); ok {
		clientFields = append(clientFields, zap.String("model", m.Model()))
	}
	log.Info("completion client initialized", clientFields...)

	db, err := config.InitDatabase(cfg, log)
	if err != nil {
		log.Error("failed to initialize database", zap.Error(err))
		return err
	}

	var sessions repositories.SessionRepository
	if db != nil {
		sessions = repositories.NewSessionRepository(db)
	}

	interviewService := services.NewInterviewService(client, sessions, log)

	interviewHandler := handlers.NewInterviewHandler(
		interviewService,
		services.NewPDFParserService(),
		cfg.Upload.MaxFileSize,
		log,
	)
	sessionHandler := handlers.NewSessionHandler(sessions)

	app := server.New(server.Options{
		BodyLimit: int(cfg.Upload.MaxFileSize) + 1<<20,
		AccessLog: true,
	}, interviewHandler, sessionHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		log.Error("failed to start server", zap.Error(err))
		return err
	}

	return nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if debugFlag {
		cfg.Log.Debug = true
	}
	if jsonFlag {
		cfg.Log.JSON = true
	}
	if portFlag != "" && cmd.Flags().Lookup("port") != nil {
		cfg.Server.Port = portFlag
	}
}
