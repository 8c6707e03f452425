// Package moneytoken recognizes formatted currency amounts inside free
// text. A monetary token is one to three digits, optional comma-separated
// thousand groups, exactly two decimal places, and an optional single
// trailing minus ("271.84-" on credit-union statements means -271.84).
// No other numeric-looking text qualifies.
package moneytoken

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var tokenPattern = regexp.MustCompile(`(\d{1,3}(?:,\d{3})*\.\d{2})(-?)`)

// Token is one recognized monetary amount. The sign is carried separately
// from the magnitude so that "271.84-", "-271.84" and "271.84" all
// normalize to the same magnitude; Magnitude is never negative.
type Token struct {
	Raw       string
	Magnitude decimal.Decimal
	Negative  bool
}

// Signed returns the magnitude with the sign applied.
func (t Token) Signed() decimal.Decimal {
	if t.Negative {
		return t.Magnitude.Neg()
	}
	return t.Magnitude
}

// Extract finds all non-overlapping monetary tokens in span, in
// left-to-right order. Malformed digits normalize to zero rather than
// failing: the engine is a best-effort extractor, not a validator.
func Extract(span string) []Token {
	matches := tokenPattern.FindAllStringSubmatch(span, -1)
	if matches == nil {
		return nil
	}

	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		digits := strings.ReplaceAll(m[1], ",", "")
		magnitude, err := decimal.NewFromString(digits)
		if err != nil {
			magnitude = decimal.Zero
		}
		tokens = append(tokens, Token{
			Raw:       m[0],
			Magnitude: magnitude,
			Negative:  m[2] == "-",
		})
	}
	return tokens
}

// ContainsDigit reports whether s carries at least one ASCII digit. Both
// front-ends use this to pick out numeric candidates before applying the
// token grammar.
func ContainsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}
