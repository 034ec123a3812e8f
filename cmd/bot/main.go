package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/eldarkhamitov/country-quiz-bot/internal/config"
	"github.com/eldarkhamitov/country-quiz-bot/internal/delivery/telegram"
	"github.com/eldarkhamitov/country-quiz-bot/internal/infra/postgres"
	pgrepo "github.com/eldarkhamitov/country-quiz-bot/internal/infra/postgres/repository"
	"github.com/eldarkhamitov/country-quiz-bot/internal/logger"
	"github.com/eldarkhamitov/country-quiz-bot/internal/quiz"
	"github.com/eldarkhamitov/country-quiz-bot/internal/repository"
	"github.com/eldarkhamitov/country-quiz-bot/internal/service"
	"github.com/eldarkhamitov/country-quiz-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zapLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zapLogger.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zapLogger.Fatal("failed to create bot api", zap.Error(err))
	}
	zapLogger.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	commands := []tgbotapi.BotCommand{
		{Command: "play", Description: "Start a quiz run"},
		{Command: "hint", Description: "Get a hint for the current question"},
		{Command: "stop", Description: "Abandon the current run"},
		{Command: "today", Description: "Country of the day"},
		{Command: "countries", Description: "Browse countries by continent"},
		{Command: "stats", Description: "Your results"},
		{Command: "top", Description: "Best streaks of all players"},
		{Command: "settings", Description: "Levels per run, hints, reminders"},
		{Command: "reset", Description: "Erase your progress"},
		{Command: "help", Description: "How everything works"},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zapLogger.Warn("failed to set bot commands", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	countryRepo, err := repository.NewCountryRepository(cfg.CountriesPath)
	if err != nil {
		zapLogger.Fatal("failed to load country dataset", zap.Error(err))
	}
	zapLogger.Info("country dataset loaded", zap.Int("countries", countryRepo.Count()))

	dsn, err := cfg.DB.DSN()
	if err != nil {
		zapLogger.Fatal("database is not configured", zap.Error(err))
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        cfg.DB.MaxConnections,
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	userRepo := pgrepo.NewUserRepository(pool)
	settingsRepo := pgrepo.NewSettingsRepository(pool)
	runRepo := pgrepo.NewRunRepository(pool)
	reminderRepo := pgrepo.NewReminderRepository(pool)
	transactor := postgres.NewTransactor(pool)

	userService := service.NewUserService(userRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	quizService := service.NewQuizService(countryRepo, settingsRepo)
	countryService := service.NewCountryService(countryRepo)
	statsService := service.NewStatsService(runRepo)
	resetService := service.NewResetService(transactor)
	reminderService := service.NewReminderService(
		reminderRepo,
		userRepo,
		zapLogger,
		cfg.Reminders.CronSpec,
		cfg.Reminders.BatchSize,
	)

	sessions := storage.NewSessionStore()
	nudges := storage.NewReminderStore()

	handler := telegram.NewHandler(
		bot,
		zapLogger,
		userService,
		quizService,
		countryService,
		settingsService,
		statsService,
		resetService,
		sessions,
		nudges,
		quiz.NewTimerScheduler(),
		cfg.Quiz.AdvanceDelay,
	)

	reminderService.SetNotifier(handler)
	go reminderService.Start(ctx)

	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		zapLogger.Fatal("handler stopped", zap.Error(err))
	}

	zapLogger.Info("shutdown complete")
}
