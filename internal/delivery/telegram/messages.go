// messages.go contains message templates and formatting helpers for Telegram.

package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	msgInternalError      = "Something went wrong. Please try again later."
	msgUnknownCommand     = "Unknown command. Send /help to see what I can do."
	msgNoActiveRun        = "No quiz is running. Send /play to start one!"
	msgRunAlreadyOver     = "That run is already over. Send /play to start a new one!"
	msgEmptyAnswer        = "Type an answer first."
	msgUseButtons         = "Use the buttons under the question to answer this one."
	msgLevelClearedWait   = "Level cleared! The next country is on its way..."
	msgWrongAnswer        = "❌ Not this one. Try again!"
	msgWrongAnswerHint    = "❌ Not this one. Try again or send /hint."
	msgWrongChoiceAlert   = "Not quite. Try the other one!"
	msgStaleQuestion      = "That question is already done."
	msgSaved              = "Saved!"
	msgCountryNotFound    = "That country is not in the atlas anymore."
	msgSeeYouTomorrow     = "See you tomorrow!"
	msgHintsDisabled      = "Hints are turned off. Enable them in /settings."
	msgNoHintHere         = "No hint for this one, sorry."
	msgDatasetUnavailable = "The country data is unavailable right now. Please try again later."
	msgNoRunsYet          = "You have no finished runs yet. Send /play to record your first one!"
	msgLeaderboardEmpty   = "The leaderboard is still empty. Be the first: /play"
	msgTimezoneUsage      = "Usage: /timezone Europe/Berlin or /timezone UTC+3"
	msgTimezoneInvalid    = "I don't know that timezone. Try an IANA name like Europe/Berlin or an offset like UTC+3."
	msgContinentUsage     = "Usage: /continent Europe"
	msgContinentUnknown   = "I don't know that continent. Try /countries to browse."
	msgContinentEmpty     = "No countries on record for that continent."
	msgResetCancelled     = "Nothing was deleted. Your progress is safe."
	msgResetDone          = "All your runs and settings are gone. Fresh start: /play"
	msgReminderSet        = "Done! I will nudge you once a day. You can change the hour in /settings."
	msgReminderOff        = "Okay, no reminders. You can enable them any time in /settings."
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a message without any parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

// welcomeMessage greets a returning user.
func welcomeMessage(firstName string) string {
	var sb strings.Builder

	sb.WriteString(md("👋 Welcome back"))
	if firstName != "" {
		sb.WriteString(md(", "))
		sb.WriteString(bold(firstName))
	}
	sb.WriteString(md("!"))
	sb.WriteString("\n\n")

	sb.WriteString(md("🌍 Ready to guess some countries?"))
	sb.WriteString("\n\n")

	sb.WriteString(bold("/play"))
	sb.WriteString(md(" — start a quiz run"))
	sb.WriteString("\n")
	sb.WriteString(bold("/today"))
	sb.WriteString(md(" — country of the day"))
	sb.WriteString("\n")
	sb.WriteString(bold("/stats"))
	sb.WriteString(md(" — your results"))
	sb.WriteString("\n")
	sb.WriteString(bold("/help"))
	sb.WriteString(md(" — everything else"))

	return sb.String()
}

// helpMessage lists every command.
func helpMessage() string {
	var sb strings.Builder

	sb.WriteString(bold("🌍 Country Quiz"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Each level is one country: name it from its flag, name its capital, then answer a geography question. Clear all levels to finish the run!"))
	sb.WriteString("\n\n")

	sb.WriteString(bold("Playing"))
	sb.WriteString("\n")
	sb.WriteString(md("/play — start a new run"))
	sb.WriteString("\n")
	sb.WriteString(md("/hint — get a hint for the current question"))
	sb.WriteString("\n")
	sb.WriteString(md("/stop — abandon the current run"))
	sb.WriteString("\n\n")

	sb.WriteString(bold("Exploring"))
	sb.WriteString("\n")
	sb.WriteString(md("/today — country of the day"))
	sb.WriteString("\n")
	sb.WriteString(md("/countries — browse countries by continent"))
	sb.WriteString("\n")
	sb.WriteString(md("/continent Europe — jump straight to one continent"))
	sb.WriteString("\n\n")

	sb.WriteString(bold("Progress"))
	sb.WriteString("\n")
	sb.WriteString(md("/stats — your accuracy, streaks and runs"))
	sb.WriteString("\n")
	sb.WriteString(md("/top — best streaks of all players"))
	sb.WriteString("\n\n")

	sb.WriteString(bold("Setup"))
	sb.WriteString("\n")
	sb.WriteString(md("/settings — levels per run, hints, reminders"))
	sb.WriteString("\n")
	sb.WriteString(md("/timezone Europe/Berlin — set your timezone for reminders"))
	sb.WriteString("\n")
	sb.WriteString(md("/reset — wipe your progress"))

	return sb.String()
}
