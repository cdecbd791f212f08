package compiler

import (
	"errors"
	"fmt"
	"strconv"
)

// Diagnostic is a recoverable condition noticed during dispatch. It is
// collected, never thrown; the statement walk always continues.
type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}

// dispatcher walks the token sequence with a single forward pointer.
// It is a flat recognizer: it knows the shape of let/fn/zone/match
// statements and skips every other token one at a time. Function bodies
// are never consumed as a unit, so brace and body tokens come back
// around at top level and fall through the skip case.
type dispatcher struct {
	c      *Compilation
	tokens []Token
	pos    int
}

func (d *dispatcher) current() Token {
	if d.pos >= len(d.tokens) {
		return Token{Type: EOF}
	}
	return d.tokens[d.pos]
}

func (d *dispatcher) report(line int, format string, args ...any) {
	d.c.Diagnostics = append(d.c.Diagnostics, Diagnostic{Line: line, Message: fmt.Sprintf(format, args...)})
}

// run processes the whole sequence up to EOF.
func (d *dispatcher) run() {
	for d.current().Type != EOF {
		tok := d.current()

		switch {
		case tok.Type == PRAGMA:
			d.c.logf("processed: %s", tok.Lexeme)

		case tok.Type == KEYWORD && tok.Lexeme == "let":
			d.pos++
			d.letStatement()

		case tok.Type == KEYWORD && tok.Lexeme == "fn":
			d.pos++
			d.fnStatement()

		case tok.Type == KEYWORD && tok.Lexeme == "zone":
			d.pos++
			d.zoneStatement()

		case tok.Type == KEYWORD && tok.Lexeme == "match" && d.c.Config.PatternMatching:
			d.pos++
			d.matchStatement()
		}

		d.pos++
	}
}

// letStatement handles `let <ident> = <number|string>`. Any deviation
// from that exact shape is reported and the statement is abandoned with
// nothing assigned; there is no expression grammar behind the literal.
func (d *dispatcher) letStatement() {
	tok := d.current()
	if tok.Type != IDENTIFIER {
		return
	}
	name := tok.Lexeme
	d.pos++

	tok = d.current()
	if tok.Type != OPERATOR || tok.Lexeme != "=" {
		d.report(tok.Line, "malformed let: expected '=' after %q", name)
		return
	}
	d.pos++

	tok = d.current()
	switch tok.Type {
	case NUMBER:
		if d.declare(name, KindNumber, tok.Line) {
			d.c.Symbols.Assign(name, NumberValue(parseNumber(tok.Lexeme)))
			d.c.logf("assigned %s = %s", name, tok.Lexeme)
		}
	case STRING:
		if d.declare(name, KindString, tok.Line) {
			d.c.Symbols.Assign(name, StringValue(tok.Lexeme))
			d.c.logf("assigned %s = %q", name, tok.Lexeme)
		}
	default:
		d.report(tok.Line, "malformed let: %q needs a number or string literal", name)
	}
}

// fail routes an operation error to the right bucket: table overflows
// are fatal to that table and land in Fatals, everything else is an
// ordinary diagnostic. Either way the walk continues.
func (d *dispatcher) fail(line int, err error) {
	if IsFatal(err) {
		d.c.Fatals = append(d.c.Fatals, err)
		return
	}
	d.report(line, "%v", err)
}

// declare runs the symbol table declaration and reports its failure
// modes. Returns whether the assignment may proceed.
func (d *dispatcher) declare(name string, kind ValueKind, line int) bool {
	zoneID := d.c.Zones.IDByName(d.c.Config.CurrentZone)
	err := d.c.Symbols.Declare(name, kind, zoneID)
	if err == nil {
		return true
	}
	d.fail(line, err)
	return false
}

func (d *dispatcher) fnStatement() {
	tok := d.current()
	if tok.Type != IDENTIFIER {
		return
	}
	if _, err := d.c.Functions.Declare(tok.Lexeme, d.c.Config.UseBraces); err != nil {
		d.fail(tok.Line, err)
		return
	}
	d.c.logf("declared function: %s", tok.Lexeme)
}

func (d *dispatcher) zoneStatement() {
	tok := d.current()
	if tok.Type != IDENTIFIER {
		return
	}
	if _, err := d.c.Zones.Create(tok.Lexeme, DefaultZoneSize, true); err != nil {
		d.fail(tok.Line, err)
		return
	}
	d.c.logf("memory zone %q created with %d bytes", tok.Lexeme, DefaultZoneSize)
}

func (d *dispatcher) matchStatement() {
	tok := d.current()
	if tok.Type != IDENTIFIER {
		return
	}
	// Case arms are not parsed; only the subject is recorded.
	d.c.logf("pattern matching on: %s", tok.Lexeme)
}

// parseNumber converts a NUMBER lexeme the way atof would: the longest
// leading prefix that still parses as a float wins, so "1.2.3" yields
// 1.2 and a lexeme with no valid prefix yields 0.
func parseNumber(lexeme string) float64 {
	if n, err := strconv.ParseFloat(lexeme, 64); err == nil {
		return n
	}
	for end := len(lexeme) - 1; end > 0; end-- {
		if n, err := strconv.ParseFloat(lexeme[:end], 64); err == nil {
			return n
		}
	}
	return 0
}

// IsFatal reports whether err is one of the conditions that stop a
// table's or the allocator's further growth.
func IsFatal(err error) bool {
	return errors.Is(err, ErrTableFull) || errors.Is(err, ErrTooManyZones)
}
