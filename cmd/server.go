package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"todolist/internal/bot"
	"todolist/internal/config"
	"todolist/internal/core"
	"todolist/internal/db"
	"todolist/internal/http/handler"
	"todolist/internal/http/handler/middleware"
	"todolist/internal/http/payload"
	"todolist/internal/http/server"
	"todolist/internal/http/web"
	"todolist/internal/repository"
	"todolist/internal/session"
	"todolist/pkg/log"
	"todolist/pkg/password"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("todolist", zapcore.InfoLevel)

	appConfig, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(appConfig.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewTodoRepository(dbConn)

	err = repo.Migrate()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	if appConfig.SeedDemoData {
		err = repo.SeedDemoData(context.Background())
		if err != nil {
			logger.Errorw("failed to seed demo data", "error", err)
			return err
		}
	}

	// sessions live in memory; a restart logs everyone out
	sessions := session.NewManager()

	var hasher core.PasswordHasher = password.SHA256Hasher{}
	if appConfig.PasswordHash == config.HashBcrypt {
		hasher = password.NewBcryptHasher()
	}

	// business layer
	todo := core.NewTodolist(
		logger,
		repo,
		sessions,
		hasher)

	// Telegram client, enabled only when a token is configured
	if appConfig.TelegramBotToken != "" {
		botAPI, err := tgbotapi.NewBotAPI(appConfig.TelegramBotToken)
		if err != nil {
			logger.Errorw("failed to connect to telegram", "error", err)
			return err
		}

		updateConfig := tgbotapi.NewUpdate(0)
		updateConfig.Timeout = 60
		updates := botAPI.GetUpdatesChan(updateConfig)
		defer botAPI.StopReceivingUpdates()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		todoBot := bot.NewBot(logger, botAPI, todo)
		go todoBot.Run(ctx, updates)

		logger.Infow("telegram bot started", "bot_username", botAPI.Self.UserName)
	}

	pages, err := web.NewRenderer()
	if err != nil {
		logger.Errorw("failed to load page templates", "error", err)
		return err
	}

	// handler
	todoHlr := handler.NewTodoHandler(
		logger,
		payload.DecodeValidator{},
		todo,
		pages)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.GetAuthPage, todoHlr.HandleAuthPage)
	mux.HandleFunc(handler.GetListPage, todoHlr.HandleListPage)
	mux.HandleFunc(handler.Register, todoHlr.HandleRegister)
	mux.HandleFunc(handler.Login, todoHlr.HandleLogin)
	mux.HandleFunc(handler.Logout, todoHlr.HandleLogout)
	mux.HandleFunc(handler.GetItems, todoHlr.HandleGetItems)
	mux.HandleFunc(handler.CreateItem, todoHlr.HandleCreateItem)
	mux.HandleFunc(handler.UpdateItem, todoHlr.HandleUpdateItem)
	mux.HandleFunc(handler.DeleteItem, todoHlr.HandleDeleteItem)

	srv := server.NewHTTP(logger, hdlr, appConfig.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
