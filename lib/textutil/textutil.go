package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/antzucaro/matchr"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeName lowercases and removes all whitespace, it is used for
// comparisons that should ignore formatting.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	return whitespaceRegex.ReplaceAllString(name, "")
}

// CollapseWhitespace trims the string, drops non-printable characters and
// squashes inner runs of whitespace into a single space.
func CollapseWhitespace(s string) string {
	var out strings.Builder
	for _, c := range s {
		if unicode.IsPrint(c) || unicode.IsSpace(c) {
			out.WriteRune(c)
		}
	}
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(out.String(), " "))
}

// StripLabel removes the label matched by `label` from the start of `s`. The
// label's length is taken from the match itself, so a string that is nothing
// but the label yields "". When the label does not match at the start, `s` is
// returned unchanged and ok is false.
func StripLabel(s string, label *regexp.Regexp) (rest string, ok bool) {
	loc := label.FindStringIndex(s)
	if loc == nil || loc[0] != 0 {
		return s, false
	}
	return s[loc[1]:], true
}

// Similarity returns the Jaro-Winkler similarity of the normalized strings,
// 1 meaning identical.
func Similarity(a, b string) float64 {
	a = NormalizeName(a)
	b = NormalizeName(b)
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	return matchr.JaroWinkler(a, b, false)
}
