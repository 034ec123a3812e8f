// onboarding.go walks first-time users through the initial setup.

package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func onboardingWelcomeMessage(firstName string) string {
	var sb strings.Builder

	greeting := "👋 Welcome!"
	if firstName != "" {
		greeting = "👋 Welcome, " + firstName + "!"
	}
	sb.WriteString(bold(greeting))
	sb.WriteString("\n\n")

	sb.WriteString(md("I'm a country quiz. Each level is one country:"))
	sb.WriteString("\n\n")
	sb.WriteString(md("🚩 Name the country from its flag\n"))
	sb.WriteString(md("🏛 Name its capital\n"))
	sb.WriteString(md("🧭 Answer a geography question\n"))
	sb.WriteString("\n")
	sb.WriteString(md("Let's set you up in two quick steps ⬇️"))

	return sb.String()
}

func onboardingWelcomeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Set me up 🚀", buildSettingsStepCallback()),
		),
	)
}

// buildSettingsStepCallback opens the first onboarding step.
func buildSettingsStepCallback() string {
	return callbackData{
		Action: actionOnboarding,
		Params: []string{onboardingLevels},
	}.encode()
}

func onboardingLevelsMessage() string {
	var sb strings.Builder

	sb.WriteString(md("Step 1 of 2"))
	sb.WriteString("\n\n")
	sb.WriteString(bold("How long should a run be?"))
	sb.WriteString("\n\n")
	sb.WriteString(md("💡 You can change this later in /settings."))

	return sb.String()
}

func onboardingLevelsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("5 levels · quick", buildOnboardingLevelsCallback(5)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("10 levels · classic ⭐", buildOnboardingLevelsCallback(10)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("25 levels · long", buildOnboardingLevelsCallback(25)),
		),
	)
}

func onboardingRemindersMessage() string {
	var sb strings.Builder

	sb.WriteString(md("Step 2 of 2"))
	sb.WriteString("\n\n")
	sb.WriteString(bold("Want a daily reminder to play?"))
	sb.WriteString("\n\n")
	sb.WriteString(md("⏰ One short nudge a day, at an hour you pick in /settings."))

	return sb.String()
}

func onboardingRemindersKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔔 Yes, remind me", buildOnboardingRemindersCallback("yes")),
			tgbotapi.NewInlineKeyboardButtonData("Not now", buildOnboardingRemindersCallback("no")),
		),
	)
}

func onboardingCompleteMessage() string {
	var sb strings.Builder

	sb.WriteString(md("✅ "))
	sb.WriteString(bold("All set!"))
	sb.WriteString("\n\n")
	sb.WriteString(md("🌍 /play — start your first run\n"))
	sb.WriteString(md("📅 /today — country of the day\n"))
	sb.WriteString(md("🗺 /countries — browse the atlas\n"))
	sb.WriteString("\n")
	sb.WriteString(md("💡 Tip: start with /play right now!"))

	return sb.String()
}

func onboardingCompleteKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ Play now", buildPlayAgainCallback()),
		),
	)
}
