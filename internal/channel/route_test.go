package channel

import "testing"

func TestRoute_Merge(t *testing.T) {
	t.Parallel()

	defaults := Route{Channel: "C-default", Token: "xoxb-default", WebhookURL: "https://hooks.example/default"}

	got := Route{Channel: "C-explicit"}.Merge(defaults)
	if got.Channel != "C-explicit" {
		t.Errorf("Channel = %q, want %q", got.Channel, "C-explicit")
	}
	if got.Token != defaults.Token {
		t.Errorf("Token = %q, want %q", got.Token, defaults.Token)
	}
	if got.WebhookURL != defaults.WebhookURL {
		t.Errorf("WebhookURL = %q, want %q", got.WebhookURL, defaults.WebhookURL)
	}

	if empty := (Route{}).Merge(Route{}); empty != (Route{}) {
		t.Errorf("empty merge = %+v, want zero", empty)
	}
}
