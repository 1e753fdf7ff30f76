package people

import (
	"regexp"
	"strings"
	"unicode"
)

// Person is one parsed "Name <email> (url)" entry. Any field may be empty.
type Person struct {
	Name  string
	Email string
	URL   string
}

// String formats the person back into "Name <email> (url)" form, omitting empty parts.
func (p Person) String() string {
	var parts []string
	if p.Name != "" {
		parts = append(parts, p.Name)
	}
	if p.Email != "" {
		parts = append(parts, "<"+p.Email+">")
	}
	if p.URL != "" {
		parts = append(parts, "("+p.URL+")")
	}
	return strings.Join(parts, " ")
}

// personPattern captures an optional name, then an optional <email>, then an optional (url).
var personPattern = regexp.MustCompile(`^\s*([^<(]*?)\s*(?:<([^>]*)>)?\s*(?:\(([^)]*)\))?\s*$`)

// Parse extracts a Person from a single line of text.
// Returns false for blank lines, lines without any letter or digit,
// and lines that do not fit the "Name <email> (url)" shape.
func Parse(line string) (Person, bool) {
	if !hasWordCharacter(line) {
		return Person{}, false
	}

	m := personPattern.FindStringSubmatch(line)
	if m == nil {
		return Person{}, false
	}

	p := Person{
		Name:  strings.TrimSpace(m[1]),
		Email: strings.TrimSpace(m[2]),
		URL:   strings.TrimSpace(m[3]),
	}
	if p == (Person{}) {
		return Person{}, false
	}
	return p, true
}

func hasWordCharacter(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
}
