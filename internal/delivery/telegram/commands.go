package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
	"github.com/eldarkhamitov/country-quiz-bot/internal/quiz"
	"github.com/eldarkhamitov/country-quiz-bot/internal/service"
)

const (
	countriesPerPage = 10
	leaderboardSize  = 10
)

// handleWelcome greets a returning user.
func (h *Handler) handleWelcome(firstName string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newMessage(chatID, welcomeMessage(firstName)))
	}
}

// handleOnboardingStart greets a first-time user and offers the setup flow.
func (h *Handler) handleOnboardingStart(firstName string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newMessage(chatID, onboardingWelcomeMessage(firstName))
		msg.ReplyMarkup = onboardingWelcomeKeyboard()
		return h.send(msg)
	}
}

// handlePlay starts a fresh run, replacing any session in progress.
func (h *Handler) handlePlay(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.startRun(ctx, userID, chatID)
	}
}

func (h *Handler) startRun(ctx context.Context, userID, chatID int64) error {
	session, err := h.quizService.NewRun(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrNoCountries) {
			return h.send(newMessage(chatID, msgDatasetUnavailable))
		}
		return fmt.Errorf("new run: %w", err)
	}

	// Storing cancels any auto-advance left over from the previous run.
	h.sessions.Store(userID, session)
	h.deleteNudge(userID)

	return h.send(newMessage(chatID, levelCard(session)))
}

// handleAnswer treats free text as an answer for the active session.
func (h *Handler) handleAnswer(userID int64, text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session, ok := h.sessions.Get(userID)
		if !ok {
			return h.send(newMessage(chatID, msgNoActiveRun))
		}

		result, err := session.SubmitText(text)
		switch {
		case errors.Is(err, quiz.ErrEmptyAnswer):
			return h.send(newPlainMessage(chatID, msgEmptyAnswer))
		case errors.Is(err, quiz.ErrLevelCleared):
			return h.send(newPlainMessage(chatID, msgLevelClearedWait))
		case errors.Is(err, quiz.ErrQuizFinished):
			return h.send(newMessage(chatID, msgRunAlreadyOver))
		case errors.Is(err, quiz.ErrInvalidStep):
			return h.send(newPlainMessage(chatID, msgUseButtons))
		case err != nil:
			return fmt.Errorf("submit answer: %w", err)
		}

		if !result.Correct {
			return h.send(newPlainMessage(chatID, h.wrongAnswerText(ctx, userID)))
		}

		if session.Step() == quiz.StepGeo {
			return h.sendGeoQuestion(chatID, session)
		}

		country, _ := session.Current()
		return h.send(newMessage(chatID, capitalPrompt(country)))
	}
}

// wrongAnswerText mentions /hint only when the user has hints enabled.
func (h *Handler) wrongAnswerText(ctx context.Context, userID int64) string {
	settings, err := h.settingsService.GetOrCreate(ctx, userID)
	if err != nil || settings.HintsEnabled {
		return msgWrongAnswerHint
	}
	return msgWrongAnswer
}

func (h *Handler) sendGeoQuestion(chatID int64, session *quiz.Session) error {
	question, err := session.GeoQuestion()
	if err != nil {
		return fmt.Errorf("geo question: %w", err)
	}

	msg := newMessage(chatID, geoCard(session, question))
	msg.ReplyMarkup = buildGeoKeyboard(question)

	return h.send(msg)
}

// handleHint sends a clue for the current question.
func (h *Handler) handleHint(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session, ok := h.sessions.Get(userID)
		if !ok {
			return h.send(newMessage(chatID, msgNoActiveRun))
		}

		settings, err := h.settingsService.GetOrCreate(ctx, userID)
		if err == nil && !settings.HintsEnabled {
			return h.send(newMessage(chatID, msgHintsDisabled))
		}

		hint := session.Hint()
		if hint == "" {
			return h.send(newPlainMessage(chatID, msgNoHintHere))
		}

		return h.send(newMessage(chatID, "💡 "+italic(hint)))
	}
}

// handleStop abandons the active run and records it.
func (h *Handler) handleStop(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session, ok := h.sessions.Get(userID)
		if !ok {
			return h.send(newMessage(chatID, msgNoActiveRun))
		}

		return h.finishRun(ctx, userID, chatID, session, entities.RunStatusAbandoned)
	}
}

// finishRun persists the run, drops the session and shows the summary.
func (h *Handler) finishRun(ctx context.Context, userID, chatID int64, session *quiz.Session, status string) error {
	run := session.Snapshot(userID)
	run.Finish(status)

	if err := h.statsService.RecordRun(ctx, run); err != nil {
		h.logger.Error("failed to record run",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	h.sessions.Delete(userID)

	text := finishCard(run)
	if status == entities.RunStatusAbandoned {
		text = abandonedCard(run)
	}

	msg := newMessage(chatID, text)
	msg.ReplyMarkup = buildPlayAgainKeyboard()

	return h.send(msg)
}

// handleToday shows the country of the day.
func (h *Handler) handleToday() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		country, err := h.countryService.CountryOfDay(time.Now())
		if err != nil {
			if errors.Is(err, service.ErrNoCountries) {
				return h.send(newMessage(chatID, msgDatasetUnavailable))
			}
			return fmt.Errorf("country of day: %w", err)
		}

		return h.send(newMessage(chatID, todayCard(country)))
	}
}

// handleCountries opens the continent picker.
func (h *Handler) handleCountries() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, kb := h.continentMenu()
		msg := newMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

func (h *Handler) continentMenu() (string, tgbotapi.InlineKeyboardMarkup) {
	var items []continentItem
	for _, name := range entities.Continents() {
		if count := len(h.countryService.ByContinent(name)); count > 0 {
			items = append(items, continentItem{Name: name, Count: count})
		}
	}

	var sb strings.Builder
	sb.WriteString(bold("🗺 Atlas"))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("%d countries across %d continents. Pick one:", h.countryService.Count(), len(items))))

	return sb.String(), buildContinentMenuKeyboard(items)
}

// handleContinent jumps straight to one continent's country list.
func (h *Handler) handleContinent(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		name := strings.TrimSpace(args)
		if name == "" {
			return h.send(newPlainMessage(chatID, msgContinentUsage))
		}

		continent, ok := matchContinent(name)
		if !ok {
			return h.send(newPlainMessage(chatID, msgContinentUnknown))
		}

		text, kb, ok := h.continentPage(continent, 0)
		if !ok {
			return h.send(newPlainMessage(chatID, msgContinentEmpty))
		}

		msg := newMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

func matchContinent(name string) (string, bool) {
	for _, continent := range entities.Continents() {
		if strings.EqualFold(continent, name) {
			return continent, true
		}
	}
	return "", false
}

// continentPage renders one page of a continent's country list.
func (h *Handler) continentPage(continent string, page int) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	countries := h.countryService.ByContinent(continent)
	if len(countries) == 0 {
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	totalPages := (len(countries) + countriesPerPage - 1) / countriesPerPage
	if page < 0 || page >= totalPages {
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	start := page * countriesPerPage
	end := start + countriesPerPage
	if end > len(countries) {
		end = len(countries)
	}

	text := continentHeader(continent, len(countries), page, totalPages)
	kb := buildContinentPageKeyboard(countries[start:end], continent, page, totalPages)

	return text, kb, true
}

// handleStats shows the user's lifetime summary.
func (h *Handler) handleStats(userID int64, firstName string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		summary, err := h.statsService.Summary(ctx, userID)
		if err != nil {
			return fmt.Errorf("get summary: %w", err)
		}

		if summary.Runs == 0 {
			return h.send(newMessage(chatID, msgNoRunsYet))
		}

		return h.send(newMessage(chatID, statsCard(firstName, summary)))
	}
}

// handleTop shows the best-streak leaderboard.
func (h *Handler) handleTop() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		entries, err := h.statsService.TopStreaks(ctx, leaderboardSize)
		if err != nil {
			return fmt.Errorf("get top streaks: %w", err)
		}

		if len(entries) == 0 {
			return h.send(newMessage(chatID, msgLeaderboardEmpty))
		}

		return h.send(newMessage(chatID, topCard(entries)))
	}
}

// handleSettings shows the settings card with its keyboard.
func (h *Handler) handleSettings(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		settings, err := h.settingsService.GetOrCreate(ctx, userID)
		if err != nil {
			return fmt.Errorf("get settings: %w", err)
		}

		msg := newMessage(chatID, settingsCard(settings))
		msg.ReplyMarkup = buildSettingsKeyboard(settings)

		return h.send(msg)
	}
}

// handleTimezone stores the user's timezone for reminder scheduling.
func (h *Handler) handleTimezone(userID int64, args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		timezone := strings.TrimSpace(args)
		if timezone == "" {
			return h.send(newPlainMessage(chatID, msgTimezoneUsage))
		}

		err := h.settingsService.SetTimezone(ctx, userID, timezone)
		if errors.Is(err, service.ErrInvalidTimezone) {
			return h.send(newPlainMessage(chatID, msgTimezoneInvalid))
		}
		if err != nil {
			return fmt.Errorf("set timezone: %w", err)
		}

		return h.send(newMessage(chatID, md(fmt.Sprintf("🕒 Timezone set to %s. Reminders follow it now.", timezone))))
	}
}

// handleResetPrompt asks for confirmation before wiping progress.
func (h *Handler) handleResetPrompt() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		var sb strings.Builder
		sb.WriteString(bold("⚠️ Erase your progress?"))
		sb.WriteString("\n\n")
		sb.WriteString(md("This deletes all your recorded runs and resets your settings. It cannot be undone."))

		msg := newMessage(chatID, sb.String())
		msg.ReplyMarkup = buildResetKeyboard()

		return h.send(msg)
	}
}

// handleHelp lists every command.
func (h *Handler) handleHelp() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newMessage(chatID, helpMessage()))
	}
}

// deleteNudge removes the pending reminder message once the user shows up.
func (h *Handler) deleteNudge(userID int64) {
	prev, ok := h.nudges.Delete(userID)
	if !ok {
		return
	}

	del := tgbotapi.NewDeleteMessage(prev.ChatID, prev.MessageID)
	if _, err := h.bot.Request(del); err != nil {
		h.logger.Debug("failed to delete nudge message", zap.Error(err))
	}
}
