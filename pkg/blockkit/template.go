package blockkit

import (
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

// entry is one block of a message: either a typed block or a raw block
// taken verbatim from a template.
type entry struct {
	block Block
	raw   json.RawMessage
}

func (e entry) render() (any, error) {
	if e.block != nil {
		return e.block.Render()
	}
	return e.raw, nil
}

// parseTemplate extracts the raw blocks of a template document shaped like
// {"blocks": [...]}.
func parseTemplate(template []byte) ([]entry, error) {
	if !gjson.ValidBytes(template) {
		return nil, &ParseError{Err: errors.New("invalid JSON")}
	}
	doc := gjson.ParseBytes(template)
	if !doc.IsObject() {
		return nil, &ParseError{Err: errors.New("template must be a JSON object")}
	}
	blocks := doc.Get("blocks")
	if !blocks.Exists() {
		return nil, missing("template", "the blocks key is missing")
	}
	if !blocks.IsArray() {
		return nil, &ParseError{Err: errors.New("blocks must be an array")}
	}

	var entries []entry
	blocks.ForEach(func(_, value gjson.Result) bool {
		entries = append(entries, entry{raw: json.RawMessage(value.Raw)})
		return true
	})
	return entries, nil
}
