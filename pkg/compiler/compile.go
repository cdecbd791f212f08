package compiler

import "fmt"

// Compilation is the context for one compile run. It owns the token
// sequence, the tables and the zone allocator exclusively; nothing is
// shared across concurrent compilations and nothing persists between
// runs.
type Compilation struct {
	Config    *Config
	Symbols   *SymbolTable
	Functions *FunctionTable
	Zones     *ZoneAllocator

	Tokens      []Token
	Diagnostics []Diagnostic
	Fatals      []error  // table/zone overflows: fatal to that table only
	Log         []string // statement-level progress notes
}

// NewCompilation builds a fresh context with default configuration and
// the global zone already created.
func NewCompilation() *Compilation {
	return &Compilation{
		Config:    NewConfig(),
		Symbols:   NewSymbolTable(),
		Functions: NewFunctionTable(),
		Zones:     NewZoneAllocator(),
	}
}

func (c *Compilation) logf(format string, args ...any) {
	c.Log = append(c.Log, fmt.Sprintf(format, args...))
}

// Scan tokenizes src into the compilation, applying pragma side effects
// to the Config as they are encountered.
func (c *Compilation) Scan(src string) {
	c.Tokens = ScanTokens(src, c.Config)
}

// Dispatch runs the flat statement walk over the scanned tokens.
func (c *Compilation) Dispatch() {
	d := &dispatcher{c: c, tokens: c.Tokens}
	d.run()
}

// Stats summarizes a finished run.
type Stats struct {
	Variables       int
	Functions       int
	Zones           int
	UseBraces       bool
	PatternMatching bool
	AutoCurry       bool
}

func (s Stats) String() string {
	onOff := func(b bool) string {
		if b {
			return "Enabled"
		}
		return "Disabled"
	}
	return fmt.Sprintf(
		"Variables: %d\nFunctions: %d\nMemory Zones: %d\nBrace Style: %s\nPattern Matching: %s\nAuto-currying: %s\n",
		s.Variables, s.Functions, s.Zones,
		onOff(s.UseBraces), onOff(s.PatternMatching), onOff(s.AutoCurry))
}

// Stats reports entity counts and the resolved configuration flags.
func (c *Compilation) Stats() Stats {
	return Stats{
		Variables:       c.Symbols.Len(),
		Functions:       c.Functions.Len(),
		Zones:           c.Zones.Len(),
		UseBraces:       c.Config.UseBraces,
		PatternMatching: c.Config.PatternMatching,
		AutoCurry:       c.Config.AutoCurry,
	}
}

// Result is what a caller gets back from Compile.
type Result struct {
	Listing     string
	Diagnostics []Diagnostic
	Fatals      []error
	Stats       Stats
}

// Compile runs the whole pipeline over src: scan, dispatch, emit. It
// always returns a result; table overflows during dispatch stop only
// their own table's growth and are reported in Result.Fatals, while the
// listing is still produced from whatever state was built.
func Compile(src string) *Result {
	c := NewCompilation()
	c.Scan(src)
	c.Dispatch()
	return &Result{
		Listing:     Emit(c.Symbols, c.Functions),
		Diagnostics: c.Diagnostics,
		Fatals:      c.Fatals,
		Stats:       c.Stats(),
	}
}
