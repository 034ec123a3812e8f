package telegram

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/eldarkhamitov/country-quiz-bot/internal/quiz"
)

type Handler struct {
	bot    *tgbotapi.BotAPI
	logger *zap.Logger

	userService     UserService
	quizService     QuizService
	countryService  CountryService
	settingsService SettingsService
	statsService    StatsService
	resetService    ResetService

	sessions SessionStorage
	nudges   ReminderStorage

	scheduler    quiz.Scheduler
	advanceDelay time.Duration
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	userService UserService,
	quizService QuizService,
	countryService CountryService,
	settingsService SettingsService,
	statsService StatsService,
	resetService ResetService,
	sessions SessionStorage,
	nudges ReminderStorage,
	scheduler quiz.Scheduler,
	advanceDelay time.Duration,
) *Handler {
	return &Handler{
		bot:             bot,
		logger:          logger,
		userService:     userService,
		quizService:     quizService,
		countryService:  countryService,
		settingsService: settingsService,
		statsService:    statsService,
		resetService:    resetService,
		sessions:        sessions,
		nudges:          nudges,
		scheduler:       scheduler,
		advanceDelay:    advanceDelay,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		return
	}

	h.logger.Debug("message received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	from := update.Message.From
	chatID := update.Message.Chat.ID

	created, err := h.userService.EnsureUser(ctx, from.ID, chatID, from.FirstName, from.UserName)
	if err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
	}

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			if created {
				_ = h.withErrorHandling(h.handleOnboardingStart(from.FirstName))(ctx, chatID)
				return
			}
			_ = h.withErrorHandling(h.handleWelcome(from.FirstName))(ctx, chatID)

		case "play":
			_ = h.withErrorHandling(h.handlePlay(from.ID))(ctx, chatID)

		case "hint":
			_ = h.withErrorHandling(h.handleHint(from.ID))(ctx, chatID)

		case "stop":
			_ = h.withErrorHandling(h.handleStop(from.ID))(ctx, chatID)

		case "today":
			_ = h.withErrorHandling(h.handleToday())(ctx, chatID)

		case "countries":
			_ = h.withErrorHandling(h.handleCountries())(ctx, chatID)

		case "continent":
			_ = h.withErrorHandling(h.handleContinent(update.Message.CommandArguments()))(ctx, chatID)

		case "stats":
			_ = h.withErrorHandling(h.handleStats(from.ID, from.FirstName))(ctx, chatID)

		case "top":
			_ = h.withErrorHandling(h.handleTop())(ctx, chatID)

		case "settings":
			_ = h.withErrorHandling(h.handleSettings(from.ID))(ctx, chatID)

		case "timezone":
			_ = h.withErrorHandling(h.handleTimezone(from.ID, update.Message.CommandArguments()))(ctx, chatID)

		case "reset":
			_ = h.withErrorHandling(h.handleResetPrompt())(ctx, chatID)

		case "help":
			_ = h.withErrorHandling(h.handleHelp())(ctx, chatID)

		default:
			_ = h.send(newMessage(chatID, msgUnknownCommand))
		}

		return
	}

	_ = h.withErrorHandling(h.handleAnswer(from.ID, update.Message.Text))(ctx, chatID)
}

func (h *Handler) sendError(chatID int64, text string) {
	_ = h.send(newMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message", zap.Error(err))
		return err
	}
	return nil
}
