package compiler

import "fmt"

// TokenType identifies the category of a scanned token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	// Literals
	IDENTIFIER // variable / function name
	NUMBER     // numeric literal (digits and dots, taken verbatim)
	STRING     // string literal "..."

	KEYWORD  // member of the fixed keyword set
	OPERATOR // + - * / =

	// Paired delimiters
	BRACE_OPEN  // {
	BRACE_CLOSE // }
	PAREN_OPEN  // (
	PAREN_CLOSE // )

	// Punctuation
	SEMICOLON // ;
	COMMA     // ,
	NEWLINE   // \n (significant: statements are line-oriented)

	PRAGMA      // full "#..." directive line
	ARROW       // =>
	PIPE        // |
	ZONE_MARKER // @
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	EOF:         "EOF",
	IDENTIFIER:  "IDENTIFIER",
	NUMBER:      "NUMBER",
	STRING:      "STRING",
	KEYWORD:     "KEYWORD",
	OPERATOR:    "OPERATOR",
	BRACE_OPEN:  "BRACE_OPEN",
	BRACE_CLOSE: "BRACE_CLOSE",
	PAREN_OPEN:  "PAREN_OPEN",
	PAREN_CLOSE: "PAREN_CLOSE",
	SEMICOLON:   "SEMICOLON",
	COMMA:       "COMMA",
	NEWLINE:     "NEWLINE",
	PRAGMA:      "PRAGMA",
	ARROW:       "ARROW",
	PIPE:        "PIPE",
	ZONE_MARKER: "ZONE_MARKER",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Lexer.
// Tokens are immutable once produced.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Line   int    // 1-based source line
	Column int    // 1-based column of the token's first rune
}

func (t Token) String() string {
	return fmt.Sprintf("%-11s %-14q  line %d col %d", t.Type, t.Lexeme, t.Line, t.Column)
}
