package blockkit

import (
	"strings"
	"testing"
)

func TestPlainText_Bounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		opts       []LengthOption
		constraint Constraint
		limit      int
	}{
		{name: "at default max", text: strings.Repeat("a", 3000)},
		{name: "at default min", text: "a"},
		{name: "over default max", text: strings.Repeat("a", 3001), constraint: ConstraintMaxLength, limit: 3000},
		{name: "empty", text: "", constraint: ConstraintMinLength, limit: 1},
		{name: "custom max counts characters", text: "héllo", opts: []LengthOption{MaxLength(5)}},
		{name: "over custom max", text: "héllo!", opts: []LengthOption{MaxLength(5)}, constraint: ConstraintMaxLength, limit: 5},
		{name: "custom min", text: "ab", opts: []LengthOption{MinLength(3)}, constraint: ConstraintMinLength, limit: 3},
		{name: "zero min allows empty", text: "", opts: []LengthOption{MinLength(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			txt := NewPlainText(tt.text, tt.opts...)
			if tt.constraint == "" {
				if err := txt.Err(); err != nil {
					t.Fatalf("Err() = %v, want nil", err)
				}
				return
			}
			ve := wantValidation(t, txt.Err(), "text", tt.constraint)
			if ve.Limit != tt.limit {
				t.Errorf("Limit = %d, want %d", ve.Limit, tt.limit)
			}
			if _, err := txt.Render(); err == nil {
				t.Error("Render() should return the creation error")
			}
		})
	}
}

func TestPlainText_Render(t *testing.T) {
	t.Parallel()

	if got, want := renderJSON(t, NewPlainText("hi")), `{"type":"plain_text","text":"hi"}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if got, want := renderJSON(t, NewPlainText("hi").Emoji(true)), `{"type":"plain_text","text":"hi","emoji":true}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestRichText_Modes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text *RichText
		want string
	}{
		{
			name: "markdown without flags",
			text: NewRichText("hi").Markdown(),
			want: `{"type":"mrkdwn","text":"hi"}`,
		},
		{
			name: "emoji suppressed in markdown",
			text: NewRichText("hi").Emoji(true).Markdown(),
			want: `{"type":"mrkdwn","text":"hi"}`,
		},
		{
			name: "emoji set after markdown still suppressed",
			text: NewRichText("hi").Markdown().Emoji(false),
			want: `{"type":"mrkdwn","text":"hi"}`,
		},
		{
			name: "verbatim in markdown",
			text: NewRichText("hi").Markdown().Verbatim(true),
			want: `{"type":"mrkdwn","text":"hi","verbatim":true}`,
		},
		{
			name: "verbatim suppressed in plain",
			text: NewRichText("hi").Verbatim(true),
			want: `{"type":"plain_text","text":"hi"}`,
		},
		{
			name: "last mode wins",
			text: NewRichText("hi").Emoji(true).Markdown().Verbatim(false).Plain(),
			want: `{"type":"plain_text","text":"hi","emoji":true}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := renderJSON(t, tt.text); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRichText_LengthErrorSurvivesModeSwitch(t *testing.T) {
	t.Parallel()

	txt := NewRichText(strings.Repeat("x", 11), MaxLength(10)).Markdown()
	_, err := txt.Render()
	wantValidation(t, err, "text", ConstraintMaxLength)
}
