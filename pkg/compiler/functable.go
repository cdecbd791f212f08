package compiler

import (
	"fmt"
	"strings"
)

// MaxFunctions bounds the function table.
const MaxFunctions = 100

// Function is one function table entry. Entries are never mutated or
// deleted after creation; currying adds new entries instead.
type Function struct {
	Name       string
	ParamCount int
	ParamNames []string
	Body       string // opaque, never analyzed
	IsCurried  bool
	CurryLevel int
	UsesBraces bool
}

// FunctionTable maps function names to their declared metadata, in
// insertion order. Synthesized curried entries live alongside the
// originals under their own names.
type FunctionTable struct {
	funcs []Function
	full  bool
}

func NewFunctionTable() *FunctionTable {
	return &FunctionTable{}
}

// Declare appends a new function entry. Parameter lists are not parsed
// from source in this model, so ParamCount starts at zero.
func (f *FunctionTable) Declare(name string, usesBraces bool) (*Function, error) {
	if f.full || len(f.funcs) >= MaxFunctions {
		f.full = true
		return nil, fmt.Errorf("function table: %w", ErrTableFull)
	}
	f.funcs = append(f.funcs, Function{Name: name, UsesBraces: usesBraces})
	return &f.funcs[len(f.funcs)-1], nil
}

// Lookup finds the first entry with the given name.
func (f *FunctionTable) Lookup(name string) (Function, bool) {
	for _, fn := range f.funcs {
		if fn.Name == name {
			return fn, true
		}
	}
	return Function{}, false
}

// TryCurry synthesizes a partially-applied variant of name when fewer
// arguments were supplied than declared. The new entry is named
// "<name>_curried_<n>" and the original is left untouched. Calling this
// twice with the same argument count appends two identical entries; the
// table does not deduplicate. Returns the new entry's name, or "" when
// nothing was synthesized (unknown function, enough arguments, or the
// feature is disabled).
func (f *FunctionTable) TryCurry(name string, providedArgs int, enabled bool) (string, error) {
	orig, ok := f.Lookup(name)
	if !ok || providedArgs >= orig.ParamCount || !enabled {
		return "", nil
	}
	if f.full || len(f.funcs) >= MaxFunctions {
		f.full = true
		return "", fmt.Errorf("function table: %w", ErrTableFull)
	}
	curried := Function{
		Name:       fmt.Sprintf("%s_curried_%d", name, providedArgs),
		ParamCount: orig.ParamCount - providedArgs,
		IsCurried:  true,
		CurryLevel: providedArgs,
		UsesBraces: orig.UsesBraces,
	}
	f.funcs = append(f.funcs, curried)
	return curried.Name, nil
}

// Functions returns the entries in insertion order. The slice is shared;
// callers must not mutate it.
func (f *FunctionTable) Functions() []Function {
	return f.funcs
}

func (f *FunctionTable) Len() int { return len(f.funcs) }

// String returns an insertion-ordered dump of the table.
func (f *FunctionTable) String() string {
	var sb strings.Builder
	if len(f.funcs) == 0 {
		return "Functions: (empty)\n"
	}
	sb.WriteString("Functions:\n")
	for _, fn := range f.funcs {
		fmt.Fprintf(&sb, "  %-28s  params: %d", fn.Name, fn.ParamCount)
		if fn.IsCurried {
			fmt.Fprintf(&sb, "  curried (level %d)", fn.CurryLevel)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
