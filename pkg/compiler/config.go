package compiler

// GlobalZoneName is the zone every compilation starts in.
const GlobalZoneName = "global"

// Config holds the pragma-settable compiler flags for one compilation.
// The Lexer mutates it while scanning pragma lines; after scanning it is
// read-only for the rest of the run. It is owned by a single Compilation,
// never shared.
type Config struct {
	UseBraces       bool
	PatternMatching bool
	AutoCurry       bool
	CurrentZone     string
}

// NewConfig returns the default configuration: brace style on, the
// optional language features off, global zone active.
func NewConfig() *Config {
	return &Config{
		UseBraces:   true,
		CurrentZone: GlobalZoneName,
	}
}
