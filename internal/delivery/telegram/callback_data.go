package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionGeo        = "geo"
	actionAgain      = "again"
	actionCountries  = "countries"
	actionCountry    = "country"
	actionSettings   = "settings"
	actionOnboarding = "onboarding"
	actionReset      = "reset"
	actionNudge      = "nudge"
)

// Settings sub-actions.
const (
	settingsMenu      = "menu"
	settingsLevels    = "levels"
	settingsHints     = "hints"
	settingsReminders = "reminders"
	settingsHour      = "hour"
)

// Onboarding sub-actions.
const (
	onboardingLevels    = "levels"
	onboardingReminders = "reminders"
)

// Reset sub-actions.
const (
	resetConfirm = "confirm"
	resetCancel  = "cancel"
)

// Nudge sub-actions.
const (
	nudgePlay    = "play"
	nudgeDismiss = "dismiss"
)

const countriesMenu = "menu"

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
}

// encode joins the action and params into a callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses a callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
	}
}

// buildGeoAnswerCallback builds callback data for picking a geo answer.
func buildGeoAnswerCallback(index int) string {
	return callbackData{
		Action: actionGeo,
		Params: []string{strconv.Itoa(index)},
	}.encode()
}

// buildPlayAgainCallback builds callback data for starting a new run.
func buildPlayAgainCallback() string {
	return actionAgain
}

// buildContinentMenuCallback builds callback data for the continent picker.
func buildContinentMenuCallback() string {
	return callbackData{
		Action: actionCountries,
		Params: []string{countriesMenu},
	}.encode()
}

// buildContinentPageCallback builds callback data for one continent page.
func buildContinentPageCallback(continent string, page int) string {
	return callbackData{
		Action: actionCountries,
		Params: []string{continent, strconv.Itoa(page)},
	}.encode()
}

// buildCountryCardCallback builds callback data for opening a country card.
// The continent and page are carried along so the card can link back.
func buildCountryCardCallback(id, continent string, page int) string {
	return callbackData{
		Action: actionCountry,
		Params: []string{id, continent, strconv.Itoa(page)},
	}.encode()
}

// buildSettingsCallback builds callback data for settings-related actions.
func buildSettingsCallback(subAction string, value ...string) string {
	params := []string{subAction}
	params = append(params, value...)
	return callbackData{
		Action: actionSettings,
		Params: params,
	}.encode()
}

func buildOnboardingLevelsCallback(levels int) string {
	return callbackData{
		Action: actionOnboarding,
		Params: []string{onboardingLevels, strconv.Itoa(levels)},
	}.encode()
}

func buildOnboardingRemindersCallback(choice string) string {
	return callbackData{
		Action: actionOnboarding,
		Params: []string{onboardingReminders, choice}, // yes/no
	}.encode()
}

func buildResetConfirmCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetConfirm}}.encode()
}

func buildResetCancelCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetCancel}}.encode()
}

func buildNudgePlayCallback() string {
	return callbackData{Action: actionNudge, Params: []string{nudgePlay}}.encode()
}

func buildNudgeDismissCallback() string {
	return callbackData{Action: actionNudge, Params: []string{nudgeDismiss}}.encode()
}
