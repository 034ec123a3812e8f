package telegram

// regionalIndicatorBase is the offset turning 'A'..'Z' into 🇦..🇿.
const regionalIndicatorBase = 0x1F1E6

// flagEmoji converts a two-letter country code into its flag emoji.
// Malformed codes fall back to a plain white flag.
func flagEmoji(alpha2 string) string {
	runes := []rune(alpha2)
	if len(runes) != 2 {
		return "🏳️"
	}

	out := make([]rune, 0, 2)
	for _, r := range runes {
		if r < 'A' || r > 'Z' {
			return "🏳️"
		}
		out = append(out, regionalIndicatorBase+r-'A')
	}

	return string(out)
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
