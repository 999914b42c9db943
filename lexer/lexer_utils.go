/*
File: lox/lexer/lexer_utils.go
Author: Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"strconv"
	"unicode"
)

// isDigitASCII reports whether c is an ASCII decimal digit ('0'..'9').
func isDigitASCII(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlphanumeric checks if the given byte is a letter or digit.
func isAlphanumeric(curr byte) bool {
	return unicode.IsLetter(rune(curr)) || unicode.IsDigit(rune(curr))
}

// isAlpha checks if the given byte is an alphabetic character (a-z, A-Z).
func isAlpha(curr byte) bool {
	return (curr >= 'a' && curr <= 'z') || (curr >= 'A' && curr <= 'Z')
}

// parseFloat converts a scanned number lexeme to its float64 value. The
// scanner only ever hands this a string matching its own number grammar,
// so a parse error here would indicate a scanner bug rather than bad
// input.
func parseFloat(lexeme string) float64 {
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return 0
	}
	return value
}
