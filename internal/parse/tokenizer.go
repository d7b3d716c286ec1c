package parse

import (
	"regexp"
	"strings"
)

var digitRun = regexp.MustCompile(`\d+`)

// Token is a matched substring and its byte offsets in the scanned text.
type Token struct {
	Value string
	Start int
	End   int
}

// DigitRuns returns every maximal run of ASCII digits in s, left to right.
func DigitRuns(s string) []Token {
	locs := digitRun.FindAllStringIndex(s, -1)
	tokens := make([]Token, 0, len(locs))
	for _, loc := range locs {
		tokens = append(tokens, Token{Value: s[loc[0]:loc[1]], Start: loc[0], End: loc[1]})
	}
	return tokens
}

// FirstDigitRun returns the first digit run in s.
func FirstDigitRun(s string) (Token, bool) {
	loc := digitRun.FindStringIndex(s)
	if loc == nil {
		return Token{}, false
	}
	return Token{Value: s[loc[0]:loc[1]], Start: loc[0], End: loc[1]}, true
}

// Overlapping tries every literal at every start index of s and returns all
// matches in start order. Matches may share characters, so "twone" yields
// both "two" and "one". At a given index literals are tried in table order.
func Overlapping(s string, literals []string) []Token {
	var tokens []Token
	for i := 0; i < len(s); i++ {
		for _, lit := range literals {
			if strings.HasPrefix(s[i:], lit) {
				tokens = append(tokens, Token{Value: lit, Start: i, End: i + len(lit)})
			}
		}
	}
	return tokens
}
