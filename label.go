package schemagen

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultAcronyms are the display forms a Labeler keeps verbatim when no
// other set is configured.
var DefaultAcronyms = []string{"AI", "CRM", "API", "SQL", "Node.js"}

// Labeler converts raw URL path segments into human-readable breadcrumb
// names. A Labeler is immutable and safe for concurrent use.
type Labeler struct {
	// acronyms maps the uppercase form of a word to its display form.
	acronyms map[string]string

	// phrases hold acronyms whose display form spans several words once
	// punctuation is treated as a word break (e.g. "Node.js" and "node js").
	// Sorted longest first.
	phrases []phrase
}

type phrase struct {
	parts   []string
	display string
}

// NewLabeler returns a Labeler recognizing the given acronym display forms.
// Blank entries are ignored.
func NewLabeler(acronyms ...string) *Labeler {
	l := &Labeler{acronyms: make(map[string]string, len(acronyms))}
	for _, display := range acronyms {
		display = strings.TrimSpace(display)
		if display == "" {
			continue
		}
		l.acronyms[strings.ToUpper(display)] = display

		parts := strings.FieldsFunc(strings.ToUpper(display), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if len(parts) > 1 {
			l.phrases = append(l.phrases, phrase{parts: parts, display: display})
		}
	}
	sort.SliceStable(l.phrases, func(i, j int) bool {
		return len(l.phrases[i].parts) > len(l.phrases[j].parts)
	})
	return l
}

// DefaultLabeler returns a Labeler configured with DefaultAcronyms.
func DefaultLabeler() *Labeler {
	return NewLabeler(DefaultAcronyms...)
}

// Acronyms returns the configured display forms in sorted order.
func (l *Labeler) Acronyms() []string {
	out := make([]string, 0, len(l.acronyms))
	for _, display := range l.acronyms {
		out = append(out, display)
	}
	sort.Strings(out)
	return out
}

var segmentReplacer = strings.NewReplacer("-", " ", "_", " ")

// Label converts a path segment such as "web-app-development" into a display
// name such as "Web App Development". Words matching an acronym render in the
// acronym's display form; all other words are capitalized.
func (l *Labeler) Label(segment string) string {
	words := strings.Fields(segmentReplacer.Replace(segment))

	out := make([]string, 0, len(words))
	for i := 0; i < len(words); {
		if display, n := l.match(words[i:]); n > 0 {
			out = append(out, display)
			i += n
			continue
		}
		out = append(out, capitalize(words[i]))
		i++
	}
	return strings.Join(out, " ")
}

// match reports the acronym starting at words[0] and how many words it consumed.
func (l *Labeler) match(words []string) (string, int) {
	for _, p := range l.phrases {
		if len(words) < len(p.parts) {
			continue
		}
		matched := true
		for k, part := range p.parts {
			if strings.ToUpper(words[k]) != part {
				matched = false
				break
			}
		}
		if matched {
			return p.display, len(p.parts)
		}
	}
	if display, ok := l.acronyms[strings.ToUpper(words[0])]; ok {
		return display, 1
	}
	return "", 0
}

// capitalize upper-cases the first rune of word and lower-cases the rest.
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToTitle(r)) + strings.ToLower(word[size:])
}
