package notation

import "strings"

// lexer scans Bali Document Notation source text into tokens. It tracks
// 1-based line and column positions for syntax errors.
type lexer struct {
	source string
	offset int
	line   int
	column int
}

func newLexer(source string) *lexer {
	return &lexer{source: source, line: 1, column: 1}
}

// tokenize scans the entire source, ending with a TokenEOF. Scanning never
// fails; unrecognizable input becomes a TokenError the parser reports.
func (l *lexer) tokenize() []Token {
	var tokens []Token
	for {
		token := l.nextToken()
		tokens = append(tokens, token)
		if token.Type == TokenEOF || token.Type == TokenError {
			return tokens
		}
	}
}

func (l *lexer) nextToken() Token {
	l.skipBlanks()
	start := l.mark()
	if l.atEnd() {
		return l.emit(TokenEOF, "", start)
	}

	c := l.peek()
	switch {
	case c == '\n':
		l.advance()
		return l.emit(TokenEOL, "\n", start)
	case c == '[' || c == ']' || c == '(' || c == ')' || c == ':' || c == ',' || c == '^':
		l.advance()
		return l.emit(TokenDelimiter, string(c), start)
	case c == '.':
		return l.scanDotted(start)
	case c >= '0' && c <= '9':
		return l.scanNumber(start, "")
	case c == '-' || c == '+':
		return l.scanSigned(start)
	case c == '~':
		return l.scanTilde(start)
	case c == '<':
		return l.scanBracketed(start)
	case c == '/':
		return l.scanName(start)
	case c == '#':
		return l.scanTag(start)
	case c == '$':
		return l.scanSymbol(start)
	case c == '"':
		return l.scanText(start)
	case c == '\'':
		return l.scanBinary(start)
	case c == 'v' && l.digitAt(l.offset+1):
		return l.scanVersion(start)
	case isLetter(c):
		return l.scanKeyword(start, "")
	default:
		l.advance()
		return l.emit(TokenError, string(c), start)
	}
}

// scanDotted distinguishes the .. range delimiter from a .75 probability
// fraction.
func (l *lexer) scanDotted(start position) Token {
	l.advance() // consume '.'
	if !l.atEnd() && l.peek() == '.' {
		l.advance()
		return l.emit(TokenDelimiter, "..", start)
	}
	if l.atEnd() || !isDigit(l.peek()) {
		return l.emit(TokenError, ".", start)
	}
	digits := l.takeWhile(isDigit)

	return l.emit(TokenFraction, "."+digits, start)
}

// scanSigned handles a sign prefix before a numeric literal or a named
// constant; the sign negates before storage.
func (l *lexer) scanSigned(start position) Token {
	sign := string(l.peek())
	l.advance()
	switch {
	case l.atEnd():
		return l.emit(TokenError, sign, start)
	case isDigit(l.peek()):
		return l.scanNumber(start, sign)
	case isLetter(l.peek()):
		return l.scanKeyword(start, sign)
	default:
		return l.emit(TokenError, sign, start)
	}
}

// scanNumber scans a real literal with an optional fraction, exponent, and
// a % or i postfix. A '.' is only part of the number when a digit follows,
// so 1..5 scans as real, .., real.
func (l *lexer) scanNumber(start position, sign string) Token {
	var sb strings.Builder
	sb.WriteString(sign)
	sb.WriteString(l.takeWhile(isDigit))
	if !l.atEnd() && l.peek() == '.' && l.digitAt(l.offset+1) {
		l.advance()
		sb.WriteByte('.')
		sb.WriteString(l.takeWhile(isDigit))
	}
	if !l.atEnd() && (l.peek() == 'E' || l.peek() == 'e') && l.exponentAt(l.offset) {
		l.advance()
		sb.WriteByte('E')
		if l.peek() == '-' || l.peek() == '+' {
			sb.WriteByte(l.peek())
			l.advance()
		}
		sb.WriteString(l.takeWhile(isDigit))
	}
	value := sb.String()
	if !l.atEnd() {
		switch l.peek() {
		case '%':
			l.advance()
			return l.emit(TokenPercent, value, start)
		case 'i':
			l.advance()
			return l.emit(TokenImaginary, value, start)
		}
	}

	return l.emit(TokenReal, value, start)
}

// exponentAt reports whether the E at offset begins a valid exponent
// (optionally signed digits), rather than the named constant e.
func (l *lexer) exponentAt(offset int) bool {
	offset++
	if offset < len(l.source) && (l.source[offset] == '-' || l.source[offset] == '+') {
		offset++
	}

	return offset < len(l.source) && isDigit(l.source[offset])
}

// scanKeyword scans a bare word: the named constants and boolean literals.
// The constants take the same % and i postfixes as digit literals (pii is
// the imaginary pi, pi% a percentage), so they match by prefix, longest
// first, instead of consuming the whole word.
func (l *lexer) scanKeyword(start position, sign string) Token {
	rest := l.source[l.offset:]
	for _, word := range []string{"phi", "pi", "e"} {
		if !strings.HasPrefix(rest, word) {
			continue
		}
		next := l.byteAt(l.offset + len(word))
		var postfix TokenType
		switch {
		case next == '%':
			postfix = TokenPercent
		case next == 'i' && !isLetter(l.byteAt(l.offset+len(word)+1)):
			postfix = TokenImaginary
		case !isLetter(next):
			postfix = TokenReal
		default:
			continue
		}
		for i := 0; i < len(word); i++ {
			l.advance()
		}
		if postfix != TokenReal {
			l.advance() // consume the postfix marker
		}
		return l.emit(postfix, sign+word, start)
	}

	word := l.takeWhile(isLetter)
	switch word {
	case "undefined":
		return l.emit(TokenUndefined, word, start)
	case "infinity":
		return l.emit(TokenInfinity, sign+word, start)
	case "true", "false":
		if sign != "" {
			return l.emit(TokenError, sign+word, start)
		}
		return l.emit(TokenBoolean, word, start)
	case "i":
		if sign == "-" {
			return l.emit(TokenImaginary, "-1", start)
		}
		return l.emit(TokenImaginary, "1", start)
	default:
		return l.emit(TokenError, sign+word, start)
	}
}

// scanTilde scans an angle (~pi, ~2.5) or a duration (~P1Y, ~-PT12H).
func (l *lexer) scanTilde(start position) Token {
	l.advance() // consume '~'
	if l.atEnd() {
		return l.emit(TokenError, "~", start)
	}

	// A period literal follows: P or -P.
	if l.peek() == 'P' || (l.peek() == '-' && l.byteAt(l.offset+1) == 'P') {
		payload := l.takeWhile(func(c byte) bool {
			return isDigit(c) || c == '.' || c == '-' ||
				c == 'P' || c == 'T' || c == 'Y' || c == 'M' ||
				c == 'W' || c == 'D' || c == 'H' || c == 'S'
		})
		return l.emit(TokenDuration, payload, start)
	}

	// Otherwise a radian value: a real literal or signed named constant.
	var sb strings.Builder
	if l.peek() == '-' || l.peek() == '+' {
		sb.WriteByte(l.peek())
		l.advance()
	}
	if l.atEnd() {
		return l.emit(TokenError, "~"+sb.String(), start)
	}
	if isLetter(l.peek()) {
		// Match the constants by prefix, longest first, so the imaginary
		// marker of a polar phase (~pii) survives as its own token.
		rest := l.source[l.offset:]
		for _, word := range []string{"phi", "pi", "e"} {
			if strings.HasPrefix(rest, word) {
				for i := 0; i < len(word); i++ {
					l.advance()
				}
				return l.emit(TokenAngle, sb.String()+word, start)
			}
		}
		return l.emit(TokenError, "~"+sb.String()+l.takeWhile(isLetter), start)
	}
	if !isDigit(l.peek()) && l.peek() != '.' {
		return l.emit(TokenError, "~"+sb.String(), start)
	}
	sb.WriteString(l.takeWhile(isDigit))
	if !l.atEnd() && l.peek() == '.' && l.digitAt(l.offset+1) {
		l.advance()
		sb.WriteByte('.')
		sb.WriteString(l.takeWhile(isDigit))
	}
	if !l.atEnd() && (l.peek() == 'E' || l.peek() == 'e') && l.exponentAt(l.offset) {
		l.advance()
		sb.WriteByte('E')
		if l.peek() == '-' || l.peek() == '+' {
			sb.WriteByte(l.peek())
			l.advance()
		}
		sb.WriteString(l.takeWhile(isDigit))
	}

	return l.emit(TokenAngle, sb.String(), start)
}

// scanBracketed scans a moment or resource literal between angle brackets;
// the payload's shape decides which.
func (l *lexer) scanBracketed(start position) Token {
	l.advance() // consume '<'
	payload := l.takeWhile(func(c byte) bool { return c != '>' && c != '\n' })
	if l.atEnd() || l.peek() != '>' {
		return l.emit(TokenError, "<"+payload, start)
	}
	l.advance() // consume '>'
	if payload != "" && isDigit(payload[0]) {
		return l.emit(TokenMoment, payload, start)
	}

	return l.emit(TokenResource, payload, start)
}

// scanName scans a slash-separated hierarchical name.
func (l *lexer) scanName(start position) Token {
	var sb strings.Builder
	for !l.atEnd() && l.peek() == '/' {
		l.advance()
		part := l.takeWhile(func(c byte) bool {
			return isLetter(c) || isDigit(c) || c == '-' || c == '.'
		})
		if part == "" {
			return l.emit(TokenError, sb.String()+"/", start)
		}
		sb.WriteByte('/')
		sb.WriteString(part)
	}

	return l.emit(TokenName, sb.String(), start)
}

func (l *lexer) scanTag(start position) Token {
	l.advance() // consume '#'
	payload := l.takeWhile(isBase32)
	if payload == "" {
		return l.emit(TokenError, "#", start)
	}

	return l.emit(TokenTag, payload, start)
}

func (l *lexer) scanSymbol(start position) Token {
	l.advance() // consume '$'
	payload := l.takeWhile(func(c byte) bool {
		return isLetter(c) || isDigit(c) || c == '-'
	})
	if payload == "" {
		return l.emit(TokenError, "$", start)
	}

	return l.emit(TokenSymbol, payload, start)
}

// scanText scans a double-quoted string, resolving backslash escapes.
func (l *lexer) scanText(start position) Token {
	l.advance() // consume opening quote
	var sb strings.Builder
	for !l.atEnd() {
		c := l.peek()
		switch c {
		case '"':
			l.advance()
			return l.emit(TokenText, sb.String(), start)
		case '\\':
			l.advance()
			if l.atEnd() {
				return l.emit(TokenError, sb.String(), start)
			}
			switch l.peek() {
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			default:
				return l.emit(TokenError, sb.String()+"\\"+string(l.peek()), start)
			}
			l.advance()
		case '\n':
			return l.emit(TokenError, sb.String(), start)
		default:
			sb.WriteByte(c)
			l.advance()
		}
	}

	return l.emit(TokenError, sb.String(), start)
}

func (l *lexer) scanBinary(start position) Token {
	l.advance() // consume opening quote
	payload := l.takeWhile(isBase32)
	if l.atEnd() || l.peek() != '\'' {
		return l.emit(TokenError, "'"+payload, start)
	}
	l.advance() // consume closing quote

	return l.emit(TokenBinary, payload, start)
}

func (l *lexer) scanVersion(start position) Token {
	l.advance() // consume 'v'
	payload := l.takeWhile(func(c byte) bool { return isDigit(c) || c == '.' })

	return l.emit(TokenVersion, payload, start)
}

// ------------------------------------------------------------------
// Low-level scanning machinery.
// ------------------------------------------------------------------

type position struct {
	line   int
	column int
}

func (l *lexer) mark() position { return position{line: l.line, column: l.column} }

func (l *lexer) emit(t TokenType, value string, at position) Token {
	return Token{Type: t, Value: value, Line: at.line, Column: at.column}
}

func (l *lexer) atEnd() bool { return l.offset >= len(l.source) }

func (l *lexer) peek() byte { return l.source[l.offset] }

func (l *lexer) byteAt(offset int) byte {
	if offset >= len(l.source) {
		return 0
	}

	return l.source[offset]
}

func (l *lexer) digitAt(offset int) bool {
	return offset < len(l.source) && isDigit(l.source[offset])
}

func (l *lexer) advance() {
	if l.source[l.offset] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.offset++
}

func (l *lexer) takeWhile(accept func(byte) bool) string {
	start := l.offset
	for !l.atEnd() && accept(l.peek()) {
		l.advance()
	}

	return l.source[start:l.offset]
}

// skipBlanks skips spaces and tabs; newlines are significant separators.
func (l *lexer) skipBlanks() {
	for !l.atEnd() && (l.peek() == ' ' || l.peek() == '\t' || l.peek() == '\r') {
		l.advance()
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isBase32(c byte) bool {
	if c >= '0' && c <= '9' {
		return true
	}

	return c >= 'A' && c <= 'Z' && c != 'E' && c != 'I' && c != 'O' && c != 'U'
}
