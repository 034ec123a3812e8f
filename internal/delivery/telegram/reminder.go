package telegram

import (
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
	"github.com/eldarkhamitov/country-quiz-bot/internal/service"
)

// SendReminder delivers the daily nudge. It implements service.ReminderNotifier
// and may be called concurrently by the reminder workers.
func (h *Handler) SendReminder(target entities.ReminderTarget) error {
	msg := newMessage(target.ChatID, nudgeCard(target.FirstName))
	msg.ReplyMarkup = buildNudgeKeyboard()

	sent, err := h.bot.Send(msg)
	if err != nil {
		if isBlockedErr(err) {
			return service.ErrBotBlocked
		}
		return fmt.Errorf("send nudge: %w", err)
	}

	// Drop yesterday's nudge if the user ignored it, so the chat does
	// not fill up with reminders.
	prev, hadPrev := h.nudges.UpsertAndGetPrev(target.UserID, target.ChatID, sent.MessageID)
	if hadPrev {
		del := tgbotapi.NewDeleteMessage(prev.ChatID, prev.MessageID)
		if _, err := h.bot.Request(del); err != nil {
			h.logger.Debug("failed to delete old nudge",
				zap.Int64("user_id", target.UserID),
				zap.Error(err),
			)
		}
	}

	return nil
}

func isBlockedErr(err error) bool {
	var tgErr *tgbotapi.Error
	if errors.As(err, &tgErr) {
		return tgErr.Code == 403
	}
	return false
}
