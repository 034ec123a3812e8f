// render.go builds the MarkdownV2 card texts sent to the user.

package telegram

import (
	"fmt"
	"strings"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
	"github.com/eldarkhamitov/country-quiz-bot/internal/quiz"
)

// levelCard renders the prompt for the session's current step.
func levelCard(session *quiz.Session) string {
	country, ok := session.Current()
	if !ok {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(bold(fmt.Sprintf("🌍 Level %d of %d", session.LevelIndex()+1, session.TotalLevels())))
	sb.WriteString("\n\n")

	switch session.Step() {
	case quiz.StepCountry:
		sb.WriteString(md(flagEmoji(country.Alpha2)))
		sb.WriteString(md(" Which country is this? Type its name."))
	case quiz.StepCapital:
		sb.WriteString(md(fmt.Sprintf("🏛 What is the capital of %s?", country.Name)))
	}

	if footer := scoreFooter(session); footer != "" {
		sb.WriteString("\n\n")
		sb.WriteString(footer)
	}

	return sb.String()
}

// capitalPrompt celebrates the guessed country and asks for its capital.
func capitalPrompt(country entities.Country) string {
	var sb strings.Builder

	sb.WriteString(md(fmt.Sprintf("✅ It's %s ", flagEmoji(country.Alpha2))))
	sb.WriteString(bold(country.Name))
	sb.WriteString(md("!"))
	sb.WriteString("\n\n")
	sb.WriteString(md("🏛 And what is its capital?"))

	return sb.String()
}

// geoCard renders the geography question for the current level.
func geoCard(session *quiz.Session, question *entities.GeoQuestion) string {
	var sb strings.Builder

	sb.WriteString(bold(fmt.Sprintf("🌍 Level %d of %d", session.LevelIndex()+1, session.TotalLevels())))
	sb.WriteString("\n\n")
	sb.WriteString(md("🧭 "))
	sb.WriteString(md(question.Prompt))

	return sb.String()
}

// clearedCard replaces the geo question once the level is done.
func clearedCard(country entities.Country, session *quiz.Session) string {
	var sb strings.Builder

	sb.WriteString(md(fmt.Sprintf("🎉 Correct! %s ", flagEmoji(country.Alpha2))))
	sb.WriteString(bold(country.Name))
	sb.WriteString(md(" cleared."))

	if footer := scoreFooter(session); footer != "" {
		sb.WriteString("\n\n")
		sb.WriteString(footer)
	}

	return sb.String()
}

func scoreFooter(session *quiz.Session) string {
	if session.Attempts() == 0 {
		return ""
	}
	return md(fmt.Sprintf("🔥 Streak: %d   ✅ Correct: %d of %d",
		session.Streak(), session.Correct(), session.Attempts()))
}

// finishCard summarizes a completed run.
func finishCard(run *entities.RunResult) string {
	var sb strings.Builder

	sb.WriteString(bold("🏁 Run complete!"))
	sb.WriteString("\n\n")
	writeRunNumbers(&sb, run)

	return sb.String()
}

// abandonedCard summarizes a run stopped early.
func abandonedCard(run *entities.RunResult) string {
	var sb strings.Builder

	sb.WriteString(bold("🏳️ Run abandoned"))
	sb.WriteString("\n\n")
	writeRunNumbers(&sb, run)
	sb.WriteString("\n\n")
	sb.WriteString(md("Come back any time with /play."))

	return sb.String()
}

func writeRunNumbers(sb *strings.Builder, run *entities.RunResult) {
	sb.WriteString(md(fmt.Sprintf("🌍 Levels cleared: %d of %d", run.LevelsCleared, run.LevelsTotal)))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("✅ Correct answers: %d of %d", run.Correct, run.Attempts)))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("🔥 Best streak: %d", run.BestStreak)))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("🎯 Accuracy: %d%%", run.Accuracy)))
}

// statsCard renders a user's lifetime summary.
func statsCard(firstName string, summary *entities.RunSummary) string {
	var sb strings.Builder

	title := "📊 Your stats"
	if firstName != "" {
		title = fmt.Sprintf("📊 Stats for %s", firstName)
	}
	sb.WriteString(bold(title))
	sb.WriteString("\n\n")

	sb.WriteString(md(fmt.Sprintf("🏃 Runs: %d (completed: %d)", summary.Runs, summary.CompletedRuns)))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("🌍 Levels cleared: %d", summary.LevelsCleared)))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("✅ Correct answers: %d of %d", summary.Correct, summary.Attempts)))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("🔥 Best streak: %d", summary.BestStreak)))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("🎯 Average accuracy: %d%%", summary.AvgAccuracy)))

	return sb.String()
}

// topCard renders the best-streak leaderboard.
func topCard(entries []entities.LeaderboardEntry) string {
	var sb strings.Builder

	sb.WriteString(bold("🏆 Best streaks"))
	sb.WriteString("\n\n")

	medals := []string{"🥇", "🥈", "🥉"}
	for i, entry := range entries {
		rank := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			rank = medals[i]
		}
		sb.WriteString(md(fmt.Sprintf("%s %s — 🔥 %d (runs: %d)",
			rank, entry.FirstName, entry.BestStreak, entry.Runs)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// countryCard renders one country's fact sheet.
func countryCard(country entities.Country) string {
	var sb strings.Builder

	sb.WriteString(md(flagEmoji(country.Alpha2) + " "))
	sb.WriteString(bold(country.Name))
	sb.WriteString("\n\n")

	sb.WriteString(md(fmt.Sprintf("🏛 Capital: %s", country.Capital)))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("🗺 Continent: %s", country.Continent)))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("🌊 Landlocked: %s", yesNo(country.Landlocked))))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("🚗 Drives on the %s", country.DriveSide)))

	return sb.String()
}

// todayCard renders the country of the day.
func todayCard(country entities.Country) string {
	var sb strings.Builder

	sb.WriteString(bold("📅 Country of the day"))
	sb.WriteString("\n\n")
	sb.WriteString(countryCard(country))
	sb.WriteString("\n\n")
	sb.WriteString(md("A new one every day. Can you guess them all in /play?"))

	return sb.String()
}

// settingsCard renders the current settings.
func settingsCard(settings *entities.UserSettings) string {
	var sb strings.Builder

	sb.WriteString(bold("⚙️ Settings"))
	sb.WriteString("\n\n")

	sb.WriteString(md(fmt.Sprintf("🌍 Levels per run: %d", settings.LevelsPerRun)))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("💡 Hints: %s", onOff(settings.HintsEnabled))))
	sb.WriteString("\n")
	if settings.RemindersEnabled {
		sb.WriteString(md(fmt.Sprintf("⏰ Daily reminder: on, at %02d:00 (%s)", settings.ReminderHour, settings.Timezone)))
	} else {
		sb.WriteString(md("⏰ Daily reminder: off"))
	}
	sb.WriteString("\n\n")
	sb.WriteString(md("Set your timezone with /timezone, e.g. /timezone Europe/Berlin."))

	return sb.String()
}

// continentHeader titles one page of the continent browser.
func continentHeader(continent string, total, page, totalPages int) string {
	var sb strings.Builder

	sb.WriteString(bold(fmt.Sprintf("🗺 %s", continent)))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("%d countries — page %d of %d", total, page+1, totalPages)))
	sb.WriteString("\n")
	sb.WriteString(md("Tap a country to see its card."))

	return sb.String()
}

// nudgeCard renders the daily reminder message.
func nudgeCard(firstName string) string {
	var sb strings.Builder

	greeting := "🌍 Time for today's run!"
	if firstName != "" {
		greeting = fmt.Sprintf("🌍 %s, time for today's run!", firstName)
	}
	sb.WriteString(bold(greeting))
	sb.WriteString("\n\n")
	sb.WriteString(md("One quick quiz a day keeps the geography fresh."))

	return sb.String()
}
