package extract

import (
	"regexp"
	"strings"
)

const nbsp = "\u00a0"

var (
	reWhitespace = regexp.MustCompile(`\s+`)
	reDashes     = regexp.MustCompile(`[-–—]`)
	reNonAlnum   = regexp.MustCompile(`[^a-z0-9 ]`)
)

// NormalizeText lowercases s, turns non-breaking spaces into spaces and
// collapses whitespace.
func NormalizeText(s string) string {
	s = strings.ToLower(strings.ReplaceAll(s, nbsp, " "))
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}

// NormalizeLabel is NormalizeText with dashes turned into spaces and every
// other punctuation mark removed, so "Cut-Out Width:" becomes "cut out width".
func NormalizeLabel(s string) string {
	s = reDashes.ReplaceAllString(NormalizeText(s), " ")
	s = reNonAlnum.ReplaceAllString(s, "")
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}

// Alias describes how a label may refer to a field. A phrase alias has one
// token and matches as a substring; a token set matches when every token
// appears somewhere in the label, in any order.
type Alias struct {
	tokens []string
}

// Phrase matches labels containing s.
func Phrase(s string) Alias {
	return Alias{tokens: []string{NormalizeLabel(s)}}
}

// AllOf matches labels containing every token.
func AllOf(tokens ...string) Alias {
	a := Alias{tokens: make([]string, 0, len(tokens))}
	for _, t := range tokens {
		a.tokens = append(a.tokens, NormalizeLabel(t))
	}
	return a
}

func (a Alias) String() string {
	return strings.Join(a.tokens, "+")
}

// Matches reports whether label refers to alias. The label is normalized
// first; an alias with no tokens never matches.
func Matches(label string, alias Alias) bool {
	return matchesKey(NormalizeLabel(label), alias)
}

func matchesKey(key string, alias Alias) bool {
	if key == "" || len(alias.tokens) == 0 {
		return false
	}
	for _, t := range alias.tokens {
		if t == "" || !strings.Contains(key, t) {
			return false
		}
	}
	return true
}

// MatchesAny reports whether label matches at least one alias.
func MatchesAny(label string, aliases []Alias) bool {
	key := NormalizeLabel(label)
	for _, a := range aliases {
		if matchesKey(key, a) {
			return true
		}
	}
	return false
}

func phrases(ss ...string) []Alias {
	out := make([]Alias, len(ss))
	for i, s := range ss {
		out[i] = Phrase(s)
	}
	return out
}

func titleKeys(titles []string) []string {
	keys := make([]string, 0, len(titles))
	for _, t := range titles {
		if k := NormalizeLabel(t); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
