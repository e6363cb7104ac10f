package attachment

import (
	"encoding/json"
	"testing"
	"time"
)

func renderJSON(t *testing.T, m *Message) string {
	t.Helper()
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	return string(b)
}

func TestLevelColors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  *Message
		want string
	}{
		{"success", New("x").Success(), "good"},
		{"error", New("x").Error(), "danger"},
		{"warning", New("x").Warning(), "warning"},
		{"info", New("x").Info(), ""},
		{"default", New("x"), ""},
		{"last wins", New("x").Error().Success(), "good"},
	}
	for _, tt := range tests {
		if got := tt.msg.Color(); got != tt.want {
			t.Errorf("%s: Color() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestMessage_Minimal(t *testing.T) {
	t.Parallel()

	if got, want := renderJSON(t, New("hello")), `{"text":"hello"}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestMessage_TopLevelFields(t *testing.T) {
	t.Parallel()

	msg := New("deployed").
		To("#ops").
		From("deploybot", ":rocket:").
		Image("https://x.test/bot.png").
		LinkNames().
		UnfurlLinks(false).
		UnfurlMedia(true)

	want := `{"text":"deployed","channel":"#ops","username":"deploybot","icon_emoji":":rocket:",` +
		`"icon_url":"https://x.test/bot.png","link_names":1,"unfurl_links":false,"unfurl_media":true}`
	if got := renderJSON(t, msg); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestMessage_AttachmentInheritsColor(t *testing.T) {
	t.Parallel()

	msg := New("").Error().
		Attachment(func(a *Attachment) { a.Title("Build failed", "https://ci.test/1") }).
		Attachment(func(a *Attachment) { a.Content("custom").Color("#439FE0") })

	want := `{"attachments":[{"title":"Build failed","title_link":"https://ci.test/1","color":"danger"},` +
		`{"text":"custom","color":"#439FE0"}]}`
	if got := renderJSON(t, msg); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestMessage_InfoAttachmentHasNoColor(t *testing.T) {
	t.Parallel()

	msg := New("x").Attachment(func(a *Attachment) { a.Pretext("pre") })
	if got, want := renderJSON(t, msg), `{"text":"x","attachments":[{"pretext":"pre"}]}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestAttachment_AllFields(t *testing.T) {
	t.Parallel()

	ts := time.Unix(1700000000, 0)
	msg := New("x").Attachment(func(a *Attachment) {
		a.Title("T", "").
			Pretext("P").
			Content("*C*").
			Fallback("F").
			Field("Env", "prod").
			FieldFunc(func(f *Field) { f.Title("Notes").Value("long text").Short(false) }).
			Markdown("text", "pretext").
			Image("https://x.test/i.png").
			Thumb("https://x.test/t.png").
			Action("Open", "https://x.test", "primary").
			Action("Docs", "https://docs.test", "").
			Author("ci", "https://ci.test", "").
			Footer("footer").
			FooterIcon("https://x.test/f.png").
			Timestamp(ts).
			CallbackID("cb-1")
	})

	want := `{"text":"x","attachments":[{"title":"T","pretext":"P","text":"*C*","fallback":"F",` +
		`"fields":[{"title":"Env","value":"prod","short":true},{"title":"Notes","value":"long text","short":false}],` +
		`"mrkdwn_in":["text","pretext"],"image_url":"https://x.test/i.png","thumb_url":"https://x.test/t.png",` +
		`"actions":[{"type":"button","text":"Open","url":"https://x.test","style":"primary"},` +
		`{"type":"button","text":"Docs","url":"https://docs.test"}],` +
		`"author_name":"ci","author_link":"https://ci.test","footer":"footer","footer_icon":"https://x.test/f.png",` +
		`"ts":1700000000,"callback_id":"cb-1"}]}`
	if got := renderJSON(t, msg); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestAttachment_FieldsReplace(t *testing.T) {
	t.Parallel()

	msg := New("x").Attachment(func(a *Attachment) {
		a.Field("old", "gone").Fields(NewField("a", "1"), NewField("b", "2").Short(false))
	})
	want := `{"text":"x","attachments":[{"fields":[{"title":"a","value":"1","short":true},` +
		`{"title":"b","value":"2","short":false}]}]}`
	if got := renderJSON(t, msg); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}
