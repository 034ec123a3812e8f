// ui.go builds the inline keyboards.

package telegram

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
)

// buildGeoKeyboard puts the two geo answers side by side.
func buildGeoKeyboard(question *entities.GeoQuestion) tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	for i, choice := range question.Choices {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(choice, buildGeoAnswerCallback(i)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(row...))
}

// buildPlayAgainKeyboard closes out a finished run.
func buildPlayAgainKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Play again", buildPlayAgainCallback()),
		),
	)
}

// buildSettingsKeyboard builds the main settings keyboard. Toggle buttons
// carry the value they would switch to.
func buildSettingsKeyboard(settings *entities.UserSettings) tgbotapi.InlineKeyboardMarkup {
	hintsLabel := "💡 Turn hints on"
	hintsValue := "on"
	if settings.HintsEnabled {
		hintsLabel = "💡 Turn hints off"
		hintsValue = "off"
	}

	remindersLabel := "⏰ Enable daily reminder"
	remindersValue := "on"
	if settings.RemindersEnabled {
		remindersLabel = "⏰ Disable daily reminder"
		remindersValue = "off"
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🌍 Levels per run", buildSettingsCallback(settingsLevels)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(hintsLabel, buildSettingsCallback(settingsHints, hintsValue)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(remindersLabel, buildSettingsCallback(settingsReminders, remindersValue)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🕗 Reminder hour", buildSettingsCallback(settingsHour)),
		),
	)
}

// buildLevelsKeyboard offers the run length presets.
func buildLevelsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("5 · quick", buildSettingsCallback(settingsLevels, "5")),
			tgbotapi.NewInlineKeyboardButtonData("10 · classic", buildSettingsCallback(settingsLevels, "10")),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("25 · long", buildSettingsCallback(settingsLevels, "25")),
			tgbotapi.NewInlineKeyboardButtonData("50 · marathon", buildSettingsCallback(settingsLevels, "50")),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("100 · world tour", buildSettingsCallback(settingsLevels, "100")),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("« Back to settings", buildSettingsCallback(settingsMenu)),
		),
	)
}

// buildHourKeyboard offers the reminder hours, six per row.
func buildHourKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for hour := 0; hour < 24; hour++ {
		label := fmt.Sprintf("%02d", hour)
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, buildSettingsCallback(settingsHour, strconv.Itoa(hour))))
		if len(row) == 6 {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(row...))
			row = nil
		}
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("« Back to settings", buildSettingsCallback(settingsMenu)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildResetKeyboard asks for confirmation before wiping progress.
func buildResetKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Yes, erase everything", buildResetConfirmCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Keep my progress", buildResetCancelCallback()),
		),
	)
}

// continentItem pairs a continent with its country count for the picker.
type continentItem struct {
	Name  string
	Count int
}

// buildContinentMenuKeyboard lists continents that have countries.
func buildContinentMenuKeyboard(items []continentItem) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, item := range items {
		label := fmt.Sprintf("%s (%d)", item.Name, item.Count)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildContinentPageCallback(item.Name, 0)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildContinentPageKeyboard lists one page of countries plus navigation.
func buildContinentPageKeyboard(countries []entities.Country, continent string, page, totalPages int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	var row []tgbotapi.InlineKeyboardButton
	for _, country := range countries {
		label := fmt.Sprintf("%s %s", flagEmoji(country.Alpha2), country.Name)
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, buildCountryCardCallback(country.ID, continent, page)))
		if len(row) == 2 {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(row...))
	}

	var nav []tgbotapi.InlineKeyboardButton
	if page > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️ Previous", buildContinentPageCallback(continent, page-1)))
	}
	if page < totalPages-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", buildContinentPageCallback(continent, page+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(nav...))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("« All continents", buildContinentMenuCallback()),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildCountryCardKeyboard links from a country card back to its list page.
func buildCountryCardKeyboard(continent string, page int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("« Back to list", buildContinentPageCallback(continent, page)),
		),
	)
}

// buildNudgeKeyboard is attached to the daily reminder.
func buildNudgeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ Play now", buildNudgePlayCallback()),
			tgbotapi.NewInlineKeyboardButtonData("🙈 Not today", buildNudgeDismissCallback()),
		),
	)
}
