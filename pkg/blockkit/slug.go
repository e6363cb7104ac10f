package blockkit

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	actionIDPrefix    = "button_"
	actionIDMaxPrefix = 50
)

var (
	nonIdentifier = regexp.MustCompile(`[^A-Za-z0-9-]+`)
	nonSlug       = regexp.MustCompile(`[^a-z0-9]+`)
	slugStrip     = regexp.MustCompile(`[^a-z0-9_.-]`)
)

// ActionID derives a default action identifier from a label:
// runs of characters outside [A-Za-z0-9-] collapse to one underscore, the
// result is lowercased, trimmed of underscores, cut to 50 characters and
// prefixed with "button_".
func ActionID(label string) string {
	id := nonIdentifier.ReplaceAllString(label, "_")
	id = strings.Trim(strings.ToLower(id), "_")
	if len(id) > actionIDMaxPrefix {
		id = id[:actionIDMaxPrefix]
	}
	return actionIDPrefix + id
}

// Slug turns an option value into a lowercase slug restricted to
// [a-z0-9_.-]. Accented letters are folded to their base letter.
func Slug(value string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		value,
	)
	if err != nil {
		folded = value
	}
	s := nonSlug.ReplaceAllString(strings.ToLower(folded), "-")
	s = strings.Trim(s, "-")
	return slugStrip.ReplaceAllString(s, "")
}
