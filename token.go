package ascent

import "strconv"

// tokenKind identifies a lexical token. Operators and punctuation are their
// own rune value; the named kinds sit above the Unicode range so they can
// never collide with an input rune.
type tokenKind rune

const (
	// tokenScalar is a numeric literal.
	tokenScalar tokenKind = 0x110000 + iota
	// tokenIdent is a variable or function name.
	tokenIdent
	// tokenEnd indicates the end of the input.
	tokenEnd
	// tokenInvalid is input that no token family matches.
	tokenInvalid
)

// tokenNone is the kind of the zero token.
const tokenNone tokenKind = 0

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "none"
	case tokenScalar:
		return "scalar"
	case tokenIdent:
		return "ident"
	case tokenEnd:
		return "end"
	case tokenInvalid:
		return "invalid"
	}
	if strconv.IsPrint(rune(k)) {
		return strconv.QuoteRune(rune(k))
	}
	return "U+" + strconv.FormatInt(int64(k), 16)
}

// token is one lexical token. val carries the payload of a scalar, text the
// name of an identifier or the offending fragment of an invalid token.
type token[T Num] struct {
	kind tokenKind
	val  T
	text string
}

func (t token[T]) String() string {
	if t.text == "" {
		return t.kind.String()
	}
	return t.kind.String() + ":" + t.text
}
