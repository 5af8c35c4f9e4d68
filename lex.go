package ascent

import (
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// Punct contains the runes that lex as single-character tokens.
const Punct = "+-*/%^(),="

// Token family patterns, tested in the order scalar, identifier,
// punctuation. The float pattern accepts a dangling exponent ("12.5e") so
// that longest-match scanning does not stop in the middle of "12.5e3"; the
// payload conversion deals with the dangle.
var (
	floatPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]*)?([Ee][+-]?[0-9]*)?$`)
	intPattern   = regexp.MustCompile(`^[0-9]+$`)
	identPattern = regexp.MustCompile(`^[A-Za-z]+[A-Za-z0-9]*$`)
)

type lexer[T Num] struct {
	src  io.RuneScanner
	diag *slog.Logger
}

func lex[T Num](src io.RuneScanner, diag *slog.Logger) *lexer[T] {
	return &lexer[T]{src: src, diag: diag}
}

// matching returns one candidate token per family that matches str in full,
// in the order the families are tested.
func (l *lexer[T]) matching(str string) []token[T] {
	var matches []token[T]
	num := intPattern
	if isFloat[T]() {
		num = floatPattern
	}
	if num.MatchString(str) {
		matches = append(matches, token[T]{kind: tokenScalar, val: scalarValue[T](str), text: str})
	}
	if identPattern.MatchString(str) {
		matches = append(matches, token[T]{kind: tokenIdent, text: str})
	}
	if len(str) == 1 && strings.ContainsAny(str, Punct) {
		matches = append(matches, token[T]{kind: tokenKind(str[0]), text: str})
	}
	return matches
}

// next scans one token by longest match: grow a candidate buffer one rune at
// a time, re-testing every family, and emit the longest buffer that still
// matched, repositioning the input just past it. Whitespace outside a match
// is skipped; a newline outside a match ends the token stream.
func (l *lexer[T]) next() token[T] {
	var input string
	var longest []token[T]
	for {
		r, _, err := l.src.ReadRune()
		if err != nil {
			break
		}
		if len(longest) == 0 {
			if r == ' ' || r == '\t' || r == '\r' {
				continue
			}
			if r == '\n' {
				return token[T]{kind: tokenEnd}
			}
		}
		input += string(r)
		m := l.matching(input)
		if len(m) == 0 {
			// Growth stopped matching; resume right after the match.
			l.src.UnreadRune()
			break
		}
		longest = m
	}
	if len(longest) == 0 {
		if input == "" {
			return token[T]{kind: tokenEnd}
		}
		return token[T]{kind: tokenInvalid, text: input}
	}
	if len(longest) > 1 && l.diag != nil {
		l.diag.Warn("ambiguous match in lexer", slog.String("token", longest[0].String()))
	}
	return longest[0]
}

// scalarValue converts literal text to T, taking the longest prefix that
// converts cleanly. The float pattern can admit a dangling exponent at the
// end of the input; like stream extraction, the mantissa survives.
func scalarValue[T Num](str string) T {
	if !isFloat[T]() {
		n, _ := strconv.ParseInt(str, 10, 64)
		return T(n)
	}
	for s := str; s != ""; s = s[:len(s)-1] {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return T(f)
		}
	}
	return 0
}
