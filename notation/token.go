package notation

import "fmt"

// TokenType classifies the lexemes of Bali Document Notation.
type TokenType uint8

const (
	TokenEOF TokenType = iota
	TokenEOL
	TokenError

	// Literals; the token value carries the payload with the leading
	// marker stripped.
	TokenReal      // 42, -2.5E3, pi, -phi, e
	TokenImaginary // 2.5i, -i (payload is the coefficient)
	TokenUndefined // undefined
	TokenInfinity  // infinity, -infinity
	TokenFraction  // .75
	TokenBoolean   // true, false
	TokenPercent   // 25%, -3.5% (payload is the real part)
	TokenAngle     // ~pi, ~2.5 (payload follows the tilde)
	TokenDuration  // ~P1Y2M, ~-PT12H (payload follows the tilde)
	TokenMoment    // <2026-08-27T14:30:25> (payload inside the brackets)
	TokenResource  // <https://example.com> (payload inside the brackets)
	TokenName      // /bali/collections/Set
	TokenTag       // #A7D4KPQ2 (payload follows the hash)
	TokenSymbol    // $units (payload follows the dollar)
	TokenText      // "..." (payload is unescaped)
	TokenBinary    // '5KW1M0RR' (payload inside the quotes)
	TokenVersion   // v1.2.3 (payload follows the v)

	// Punctuation; the token value is the delimiter text itself:
	// [ ] ( ) : , .. ^
	TokenDelimiter
)

// String returns the token type name used in syntax-error expectations.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "end-of-document"
	case TokenEOL:
		return "end-of-line"
	case TokenReal:
		return "real"
	case TokenImaginary:
		return "imaginary"
	case TokenUndefined:
		return "undefined"
	case TokenInfinity:
		return "infinity"
	case TokenFraction:
		return "fraction"
	case TokenBoolean:
		return "boolean"
	case TokenPercent:
		return "percent"
	case TokenAngle:
		return "angle"
	case TokenDuration:
		return "duration"
	case TokenMoment:
		return "moment"
	case TokenResource:
		return "resource"
	case TokenName:
		return "name"
	case TokenTag:
		return "tag"
	case TokenSymbol:
		return "symbol"
	case TokenText:
		return "text"
	case TokenBinary:
		return "binary"
	case TokenVersion:
		return "version"
	case TokenDelimiter:
		return "delimiter"
	default:
		return "error"
	}
}

// Token is one lexeme with its source position (1-based line and column).
type Token struct {
	Type   TokenType
	Value  string
	Line   int
	Column int
}

// String renders the token for diagnostics.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Type, t.Value, t.Line, t.Column)
}
