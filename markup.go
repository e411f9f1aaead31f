package schemagen

import (
	"bytes"
	"encoding/json"
	"strings"
)

const (
	markupOpen  = `<script type="application/ld+json">`
	markupClose = `</script>`
)

// Markup serializes a JSON-LD object into a script block:
//
//	<script type="application/ld+json">
//	{ ...2-space indented JSON... }
//	</script>
//
// Keys keep the declaration order of v's fields. HTML characters are written
// as-is except "</", which is written "<\/" so the JSON cannot end the
// script element. Returns ESERIALIZE if v cannot be encoded.
func Markup(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", Errorf(ESERIALIZE, "encoding JSON-LD: %v", err)
	}

	body := strings.TrimSuffix(buf.String(), "\n")
	body = strings.ReplaceAll(body, "</", `<\/`)

	return markupOpen + "\n" + body + "\n" + markupClose, nil
}

// ExtractJSON returns the JSON body of a script block produced by Markup.
// Returns EPARSE if markup is not such a block.
func ExtractJSON(markup string) (string, error) {
	markup = strings.TrimSpace(markup)
	if !strings.HasPrefix(markup, markupOpen) || !strings.HasSuffix(markup, markupClose) {
		return "", Errorf(EPARSE, "not a JSON-LD script block")
	}
	body := strings.TrimSuffix(strings.TrimPrefix(markup, markupOpen), markupClose)
	body = strings.TrimSpace(body)
	if !json.Valid([]byte(body)) {
		return "", Errorf(EPARSE, "script block does not contain valid JSON")
	}
	return body, nil
}
