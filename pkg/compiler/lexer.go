package compiler

import (
	"strings"
	"unicode"
)

// keywordSet holds the fixed keyword vocabulary. Identifiers matching an
// entry are emitted as KEYWORD tokens.
var keywordSet = map[string]bool{
	"let":    true,
	"fn":     true,
	"if":     true,
	"else":   true,
	"while":  true,
	"for":    true,
	"return": true,
	"class":  true,
	"new":    true,
	"match":  true,
	"case":   true,
	"zone":   true,
	"curry":  true,
	"pipe":   true,
	"import": true,
	"export": true,
}

// Lexer holds all mutable state for a single scanning pass over src.
// It carries the compilation's Config because pragma directives take
// effect the moment they are scanned, before dispatch ever runs.
type Lexer struct {
	src  []rune
	pos  int // index of the next rune to consume
	line int // current 1-based source line
	col  int // current 1-based source column
	cfg  *Config
}

func newLexer(src string, cfg *Config) *Lexer {
	return &Lexer{src: []rune(src), pos: 0, line: 1, col: 1, cfg: cfg}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// peek2 returns the rune one position ahead of the current position.
func (l *Lexer) peek2() rune {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

// scanIdent collects a full identifier or keyword token.
// The first character (letter or '_') must still be at l.peek().
func (l *Lexer) scanIdent() Token {
	line, col := l.line, l.col
	start := l.pos
	for l.pos < len(l.src) {
		r := l.peek()
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	tt := IDENTIFIER
	if keywordSet[lexeme] {
		tt = KEYWORD
	}
	return Token{Type: tt, Lexeme: lexeme, Line: line, Column: col}
}

// scanNumber collects digits and '.' runes greedily. The text is kept
// verbatim; nothing validates digit grouping, so "1.2.3" scans as one
// NUMBER token.
func (l *Lexer) scanNumber() Token {
	line, col := l.line, l.col
	start := l.pos
	for l.pos < len(l.src) {
		r := l.peek()
		if !unicode.IsDigit(r) && r != '.' {
			break
		}
		l.advance()
	}
	return Token{Type: NUMBER, Lexeme: string(l.src[start:l.pos]), Line: line, Column: col}
}

// scanString collects a string literal. The contents are taken verbatim
// with no escape processing; an unterminated string runs to end of input.
func (l *Lexer) scanString() Token {
	line, col := l.line, l.col
	l.advance() // consume opening "
	start := l.pos
	for l.pos < len(l.src) && l.peek() != '"' {
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	if l.pos < len(l.src) {
		l.advance() // consume closing "
	}
	return Token{Type: STRING, Lexeme: lexeme, Line: line, Column: col}
}

// scanPragma captures the rest of the line, '#' included, as one PRAGMA
// token and applies any recognized directive to the Config immediately.
// The terminating newline is left for the main loop so it still gets its
// own NEWLINE token.
func (l *Lexer) scanPragma() Token {
	line, col := l.line, l.col
	start := l.pos
	for l.pos < len(l.src) && l.peek() != '\n' {
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	l.applyPragma(lexeme)
	return Token{Type: PRAGMA, Lexeme: lexeme, Line: line, Column: col}
}

// applyPragma mutates the Config for a recognized directive. Unknown
// directive text is kept as a token but has no effect. Substring match,
// so trailing commentary on the line does not matter.
func (l *Lexer) applyPragma(text string) {
	switch {
	case strings.Contains(text, "#pragma no-braces"):
		l.cfg.UseBraces = false
	case strings.Contains(text, "#pragma braces"):
		l.cfg.UseBraces = true
	case strings.Contains(text, "#pragma pattern-match"):
		l.cfg.PatternMatching = true
	case strings.Contains(text, "#pragma auto-curry"):
		l.cfg.AutoCurry = true
	}
}

// nextToken returns the next token, or ok=false when the position holds
// a rune the language does not know about (which is silently dropped by
// ScanTokens). The scanner has no failure mode.
func (l *Lexer) nextToken() (Token, bool) {
	ch := l.peek()
	line, col := l.line, l.col

	if ch == '\n' {
		l.advance()
		return Token{NEWLINE, "\n", line, col}, true
	}
	if unicode.IsSpace(ch) {
		l.advance()
		return Token{}, false
	}
	if ch == '#' {
		return l.scanPragma(), true
	}
	if ch == '"' {
		return l.scanString(), true
	}
	if unicode.IsDigit(ch) {
		return l.scanNumber(), true
	}
	if ch == '=' && l.peek2() == '>' { // lookahead: distinguish = vs =>
		l.advance()
		l.advance()
		return Token{ARROW, "=>", line, col}, true
	}
	if unicode.IsLetter(ch) || ch == '_' {
		return l.scanIdent(), true
	}

	l.advance() // consume the character before the switch
	switch ch {
	case '{':
		return Token{BRACE_OPEN, "{", line, col}, true
	case '}':
		return Token{BRACE_CLOSE, "}", line, col}, true
	case '(':
		return Token{PAREN_OPEN, "(", line, col}, true
	case ')':
		return Token{PAREN_CLOSE, ")", line, col}, true
	case ';':
		return Token{SEMICOLON, ";", line, col}, true
	case ',':
		return Token{COMMA, ",", line, col}, true
	case '|':
		return Token{PIPE, "|", line, col}, true
	case '@':
		return Token{ZONE_MARKER, "@", line, col}, true
	case '+', '-', '*', '/', '=':
		return Token{OPERATOR, string(ch), line, col}, true
	default:
		// Anything else is dropped without a token or an error.
		return Token{}, false
	}
}

// ScanTokens tokenises src in one pass and returns all tokens including
// the final EOF token. Pragma directives mutate cfg as a side effect, in
// source order, so a directive only affects tokens scanned after it.
// Scanning never fails: malformed input degrades to best-effort tokens.
func ScanTokens(src string, cfg *Config) []Token {
	l := newLexer(src, cfg)
	var tokens []Token
	for l.pos < len(l.src) {
		tok, ok := l.nextToken()
		if ok {
			tokens = append(tokens, tok)
		}
	}
	tokens = append(tokens, Token{Type: EOF, Lexeme: "", Line: l.line, Column: l.col})
	return tokens
}
