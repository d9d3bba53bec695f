package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ndquang/vocab-trainer/internal/config"
	"github.com/ndquang/vocab-trainer/internal/delivery/httpapi"
	"github.com/ndquang/vocab-trainer/internal/delivery/telegram"
	"github.com/ndquang/vocab-trainer/internal/logger"
	"github.com/ndquang/vocab-trainer/internal/repository"
	"github.com/ndquang/vocab-trainer/internal/service"
	"github.com/ndquang/vocab-trainer/internal/storage"
)

func main() {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize the store and services.
	wordRepo := repository.NewWordRepository(cfg.StorePath)

	vocabularyService := service.NewVocabularyService(wordRepo)
	topicService := service.NewTopicService(wordRepo)
	quizService := service.NewQuizService(wordRepo)
	answerChecker := service.NewAnswerChecker()

	apiHandler := httpapi.NewHandler(
		zl,
		vocabularyService,
		topicService,
		quizService,
		answerChecker,
	)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      apiHandler.Routes(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		zl.Info("http server listening", zap.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	// The Telegram surface is optional and runs only when a token is set.
	if cfg.TelegramAPIToken != "" {
		bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
		if err != nil {
			zl.Fatal("failed to create telegram bot", zap.Error(err))
		}
		zl.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

		botHandler := telegram.NewHandler(
			bot,
			zl,
			vocabularyService,
			topicService,
			quizService,
			storage.NewSessionStorage(),
			cfg.Quiz.QuestionsPerSession,
		)

		g.Go(func() error {
			if err := botHandler.Run(ctx); !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zl.Fatal("server error", zap.Error(err))
	}

	zl.Info("shutdown complete")
}
