package telegram

import "testing"

func TestCallbackDataRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data callbackData
		want string
	}{
		{
			name: "action only",
			data: callbackData{Action: actionAgain},
			want: "again",
		},
		{
			name: "geo answer",
			data: callbackData{Action: actionGeo, Params: []string{"1"}},
			want: "geo:1",
		},
		{
			name: "continent page with space in name",
			data: callbackData{Action: actionCountries, Params: []string{"North America", "2"}},
			want: "countries:North America:2",
		},
		{
			name: "country card",
			data: callbackData{Action: actionCountry, Params: []string{"250", "Europe", "1"}},
			want: "country:250:Europe:1",
		},
		{
			name: "settings value",
			data: callbackData{Action: actionSettings, Params: []string{settingsLevels, "25"}},
			want: "settings:levels:25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := tt.data.encode()
			if encoded != tt.want {
				t.Errorf("encode() = %q, want %q", encoded, tt.want)
			}

			decoded := decodeCallback(encoded)
			if decoded.Action != tt.data.Action {
				t.Errorf("Action = %q, want %q", decoded.Action, tt.data.Action)
			}
			if len(decoded.Params) != len(tt.data.Params) {
				t.Fatalf("Params = %v, want %v", decoded.Params, tt.data.Params)
			}
			for i := range decoded.Params {
				if decoded.Params[i] != tt.data.Params[i] {
					t.Errorf("Params[%d] = %q, want %q", i, decoded.Params[i], tt.data.Params[i])
				}
			}
		})
	}
}

func TestBuildCallbackHelpers(t *testing.T) {
	if got := buildGeoAnswerCallback(0); got != "geo:0" {
		t.Errorf("buildGeoAnswerCallback(0) = %q, want %q", got, "geo:0")
	}
	if got := buildContinentPageCallback("Africa", 3); got != "countries:Africa:3" {
		t.Errorf("buildContinentPageCallback = %q, want %q", got, "countries:Africa:3")
	}
	if got := buildResetConfirmCallback(); got != "reset:confirm" {
		t.Errorf("buildResetConfirmCallback = %q, want %q", got, "reset:confirm")
	}
	if got := buildOnboardingLevelsCallback(10); got != "onboarding:levels:10" {
		t.Errorf("buildOnboardingLevelsCallback = %q, want %q", got, "onboarding:levels:10")
	}
}

func TestFlagEmoji(t *testing.T) {
	tests := []struct {
		alpha2 string
		want   string
	}{
		{"FR", "🇫🇷"},
		{"JP", "🇯🇵"},
		{"BR", "🇧🇷"},
		{"", "🏳️"},
		{"F", "🏳️"},
		{"fra", "🏳️"},
		{"f1", "🏳️"},
	}

	for _, tt := range tests {
		if got := flagEmoji(tt.alpha2); got != tt.want {
			t.Errorf("flagEmoji(%q) = %q, want %q", tt.alpha2, got, tt.want)
		}
	}
}
