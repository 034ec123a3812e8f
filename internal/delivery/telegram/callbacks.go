package telegram

import (
	"context"
	"errors"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
	"github.com/eldarkhamitov/country-quiz-bot/internal/quiz"
	"github.com/eldarkhamitov/country-quiz-bot/internal/repository"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}

	data := decodeCallback(cb.Data)
	chatID := cb.Message.Chat.ID

	var alert string

	switch data.Action {
	case actionGeo:
		alert = h.geoAnswerCallback(ctx, cb, data)
	case actionAgain:
		_ = h.withErrorHandling(h.handlePlay(cb.From.ID))(ctx, chatID)
	case actionCountries:
		h.countriesCallback(cb, data)
	case actionCountry:
		alert = h.countryCardCallback(cb, data)
	case actionSettings:
		alert = h.settingsCallback(ctx, cb, data)
	case actionOnboarding:
		h.onboardingCallback(ctx, cb, data)
	case actionReset:
		h.resetCallback(ctx, cb, data)
	case actionNudge:
		alert = h.nudgeCallback(ctx, cb, data)
	default:
		return
	}

	// Answering stops the client's loading spinner.
	answer := tgbotapi.NewCallback(cb.ID, alert)
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Error("failed to answer callback", zap.Error(err))
	}
}

// geoAnswerCallback grades a tapped geo choice. The returned string is
// shown to the user as a toast.
func (h *Handler) geoAnswerCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) string {
	if len(data.Params) != 1 {
		return ""
	}
	index, err := strconv.Atoi(data.Params[0])
	if err != nil {
		return ""
	}

	userID := cb.From.ID
	chatID := cb.Message.Chat.ID

	session, ok := h.sessions.Get(userID)
	if !ok {
		return msgNoActiveRun
	}

	result, err := session.SubmitChoice(index)
	switch {
	case errors.Is(err, quiz.ErrLevelCleared):
		// Double tap while the advance is pending.
		return msgLevelClearedWait
	case errors.Is(err, quiz.ErrQuizFinished):
		return msgRunAlreadyOver
	case errors.Is(err, quiz.ErrInvalidStep):
		// Buttons of an already finished level.
		return msgStaleQuestion
	case errors.Is(err, quiz.ErrInvalidChoice):
		return ""
	case err != nil:
		h.logger.Error("failed to submit choice",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return msgInternalError
	}

	if !result.Correct {
		// The keyboard stays so the user can pick the other option.
		return msgWrongChoiceAlert
	}

	country, _ := session.Current()
	_ = h.send(newEdit(chatID, cb.Message.MessageID, clearedCard(country, session)))

	// Give the user a beat to read the card, then move on. The stored
	// cancel func keeps a restart from racing with this timer.
	cancel := h.scheduler.Schedule(h.advanceDelay, func() {
		h.sessions.ClearPendingAdvance(userID)
		h.advanceAndRender(ctx, userID, chatID)
	})
	h.sessions.SetPendingAdvance(userID, cancel)

	return ""
}

// advanceAndRender moves the session to the next level and shows it.
func (h *Handler) advanceAndRender(ctx context.Context, userID, chatID int64) {
	session, ok := h.sessions.Get(userID)
	if !ok {
		return
	}

	if err := session.Advance(); err != nil {
		// A restart or stop got there first.
		return
	}

	if session.Finished() {
		if err := h.finishRun(ctx, userID, chatID, session, entities.RunStatusCompleted); err != nil {
			h.logger.Error("failed to finish run",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
		}
		return
	}

	_ = h.send(newMessage(chatID, levelCard(session)))
}

// countriesCallback serves the continent menu and its pages.
func (h *Handler) countriesCallback(cb *tgbotapi.CallbackQuery, data callbackData) {
	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID

	if len(data.Params) == 1 && data.Params[0] == countriesMenu {
		text, kb := h.continentMenu()
		edit := newEdit(chatID, messageID, text)
		edit.ReplyMarkup = &kb
		_ = h.send(edit)
		return
	}

	if len(data.Params) != 2 {
		return
	}

	continent := data.Params[0]
	page, err := strconv.Atoi(data.Params[1])
	if err != nil {
		return
	}

	text, kb, ok := h.continentPage(continent, page)
	if !ok {
		return
	}

	edit := newEdit(chatID, messageID, text)
	edit.ReplyMarkup = &kb
	_ = h.send(edit)
}

// countryCardCallback swaps a list page for one country's fact sheet.
func (h *Handler) countryCardCallback(cb *tgbotapi.CallbackQuery, data callbackData) string {
	if len(data.Params) != 3 {
		return ""
	}

	id := data.Params[0]
	continent := data.Params[1]
	page, err := strconv.Atoi(data.Params[2])
	if err != nil {
		return ""
	}

	country, err := h.countryService.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrCountryNotFound) {
			return msgCountryNotFound
		}
		h.logger.Error("failed to load country", zap.String("id", id), zap.Error(err))
		return msgInternalError
	}

	edit := newEdit(cb.Message.Chat.ID, cb.Message.MessageID, countryCard(country))
	kb := buildCountryCardKeyboard(continent, page)
	edit.ReplyMarkup = &kb
	_ = h.send(edit)

	return ""
}

// settingsCallback handles the settings menu and its sub-screens.
func (h *Handler) settingsCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) string {
	if len(data.Params) == 0 {
		return ""
	}

	userID := cb.From.ID
	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID

	switch data.Params[0] {
	case settingsMenu:
		h.renderSettings(ctx, userID, chatID, messageID)
		return ""

	case settingsLevels:
		if len(data.Params) == 1 {
			edit := newEdit(chatID, messageID, bold("🌍 How many levels per run?"))
			kb := buildLevelsKeyboard()
			edit.ReplyMarkup = &kb
			_ = h.send(edit)
			return ""
		}

		levels, err := strconv.Atoi(data.Params[1])
		if err != nil {
			return ""
		}
		if err := h.settingsService.SetLevelsPerRun(ctx, userID, levels); err != nil {
			h.logger.Error("failed to set levels per run", zap.Int64("user_id", userID), zap.Error(err))
			return msgInternalError
		}
		h.renderSettings(ctx, userID, chatID, messageID)
		return msgSaved

	case settingsHints:
		if len(data.Params) != 2 {
			return ""
		}
		if err := h.settingsService.SetHintsEnabled(ctx, userID, data.Params[1] == "on"); err != nil {
			h.logger.Error("failed to toggle hints", zap.Int64("user_id", userID), zap.Error(err))
			return msgInternalError
		}
		h.renderSettings(ctx, userID, chatID, messageID)
		return msgSaved

	case settingsReminders:
		if len(data.Params) != 2 {
			return ""
		}
		enabled := data.Params[1] == "on"
		if err := h.settingsService.SetRemindersEnabled(ctx, userID, enabled); err != nil {
			h.logger.Error("failed to toggle reminders", zap.Int64("user_id", userID), zap.Error(err))
			return msgInternalError
		}
		h.renderSettings(ctx, userID, chatID, messageID)
		if enabled {
			return msgReminderSet
		}
		return msgReminderOff

	case settingsHour:
		if len(data.Params) == 1 {
			edit := newEdit(chatID, messageID, bold("🕗 When should I nudge you?"))
			kb := buildHourKeyboard()
			edit.ReplyMarkup = &kb
			_ = h.send(edit)
			return ""
		}

		hour, err := strconv.Atoi(data.Params[1])
		if err != nil {
			return ""
		}
		if err := h.settingsService.SetReminderHour(ctx, userID, hour); err != nil {
			h.logger.Error("failed to set reminder hour", zap.Int64("user_id", userID), zap.Error(err))
			return msgInternalError
		}
		h.renderSettings(ctx, userID, chatID, messageID)
		return msgSaved
	}

	return ""
}

// renderSettings re-renders the settings card in place.
func (h *Handler) renderSettings(ctx context.Context, userID, chatID int64, messageID int) {
	settings, err := h.settingsService.GetOrCreate(ctx, userID)
	if err != nil {
		h.logger.Error("failed to get settings", zap.Int64("user_id", userID), zap.Error(err))
		return
	}

	edit := newEdit(chatID, messageID, settingsCard(settings))
	kb := buildSettingsKeyboard(settings)
	edit.ReplyMarkup = &kb
	_ = h.send(edit)
}

// onboardingCallback walks a new user through the setup steps.
func (h *Handler) onboardingCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) {
	if len(data.Params) == 0 {
		return
	}

	userID := cb.From.ID
	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID

	switch data.Params[0] {
	case onboardingLevels:
		if len(data.Params) == 1 {
			edit := newEdit(chatID, messageID, onboardingLevelsMessage())
			kb := onboardingLevelsKeyboard()
			edit.ReplyMarkup = &kb
			_ = h.send(edit)
			return
		}

		levels, err := strconv.Atoi(data.Params[1])
		if err != nil {
			return
		}
		if err := h.settingsService.SetLevelsPerRun(ctx, userID, levels); err != nil {
			h.logger.Error("failed to set levels during onboarding", zap.Int64("user_id", userID), zap.Error(err))
		}

		edit := newEdit(chatID, messageID, onboardingRemindersMessage())
		kb := onboardingRemindersKeyboard()
		edit.ReplyMarkup = &kb
		_ = h.send(edit)

	case onboardingReminders:
		if len(data.Params) != 2 {
			return
		}

		enabled := data.Params[1] == "yes"
		if err := h.settingsService.SetRemindersEnabled(ctx, userID, enabled); err != nil {
			h.logger.Error("failed to set reminders during onboarding", zap.Int64("user_id", userID), zap.Error(err))
		}

		edit := newEdit(chatID, messageID, onboardingCompleteMessage())
		kb := onboardingCompleteKeyboard()
		edit.ReplyMarkup = &kb
		_ = h.send(edit)
	}
}

// resetCallback wipes the user's progress after confirmation.
func (h *Handler) resetCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) {
	if len(data.Params) != 1 {
		return
	}

	userID := cb.From.ID
	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID

	switch data.Params[0] {
	case resetCancel:
		_ = h.send(newEdit(chatID, messageID, md(msgResetCancelled)))

	case resetConfirm:
		if err := h.resetService.ResetUser(ctx, userID); err != nil {
			h.logger.Error("failed to reset user",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			_ = h.send(newEdit(chatID, messageID, md(msgInternalError)))
			return
		}

		h.sessions.Delete(userID)
		_ = h.send(newEdit(chatID, messageID, md(msgResetDone)))
	}
}

// nudgeCallback reacts to the daily reminder's buttons.
func (h *Handler) nudgeCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) string {
	if len(data.Params) != 1 {
		return ""
	}

	userID := cb.From.ID
	chatID := cb.Message.Chat.ID

	switch data.Params[0] {
	case nudgePlay:
		// startRun deletes the nudge message itself.
		_ = h.withErrorHandling(h.handlePlay(userID))(ctx, chatID)
		return ""

	case nudgeDismiss:
		h.deleteNudge(userID)
		return msgSeeYouTomorrow
	}

	return ""
}
