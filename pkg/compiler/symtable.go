package compiler

import (
	"errors"
	"fmt"
	"strings"
)

// MaxVariables bounds the symbol table.
const MaxVariables = 1000

var (
	// ErrImmutable is returned when a declaration names a variable that
	// already has an assigned value. Recoverable: the caller reports it
	// and moves on.
	ErrImmutable = errors.New("variable is already assigned and cannot be changed")

	// ErrTableFull is returned when a bounded table has no room left.
	// Fatal to that table's further growth, not to the compilation.
	ErrTableFull = errors.New("table full")
)

// Variable is one symbol table entry. After Assign sets IsAssigned the
// entry is frozen; nothing may change its kind or value again.
type Variable struct {
	Name       string
	Value      Value
	IsAssigned bool
	ZoneID     int // zone active when the variable was declared
}

// SymbolTable maps variable names to write-once values. Iteration order
// is insertion order because the emitter's data section depends on it.
type SymbolTable struct {
	byName map[string]int
	vars   []Variable
	full   bool // set after an overflow; later declares are refused
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{byName: make(map[string]int)}
}

// Declare creates an unassigned entry for name with the given kind, in
// the given zone. If the name already exists but was never assigned, the
// existing entry is kept. Declaring over an assigned variable is an
// immutability violation that leaves the entry untouched.
func (s *SymbolTable) Declare(name string, kind ValueKind, zoneID int) error {
	if idx, ok := s.byName[name]; ok {
		if s.vars[idx].IsAssigned {
			return fmt.Errorf("%q: %w", name, ErrImmutable)
		}
		return nil
	}
	if s.full || len(s.vars) >= MaxVariables {
		s.full = true
		return fmt.Errorf("symbol table: %w", ErrTableFull)
	}
	s.byName[name] = len(s.vars)
	s.vars = append(s.vars, Variable{Name: name, Value: Value{Kind: kind}, ZoneID: zoneID})
	return nil
}

// Assign gives a previously declared variable its one and only value.
func (s *SymbolTable) Assign(name string, v Value) error {
	idx, ok := s.byName[name]
	if !ok {
		return fmt.Errorf("assign to undeclared variable %q", name)
	}
	if s.vars[idx].IsAssigned {
		return fmt.Errorf("%q: %w", name, ErrImmutable)
	}
	s.vars[idx].Value = v
	s.vars[idx].IsAssigned = true
	return nil
}

// Lookup returns the variable and whether it was found.
func (s *SymbolTable) Lookup(name string) (Variable, bool) {
	idx, ok := s.byName[name]
	if !ok {
		return Variable{}, false
	}
	return s.vars[idx], true
}

// Variables returns the entries in insertion order. The slice is shared;
// callers must not mutate it.
func (s *SymbolTable) Variables() []Variable {
	return s.vars
}

func (s *SymbolTable) Len() int { return len(s.vars) }

// String returns an insertion-ordered dump of the table.
func (s *SymbolTable) String() string {
	var sb strings.Builder
	if len(s.vars) == 0 {
		return "Variables: (empty)\n"
	}
	sb.WriteString("Variables:\n")
	for _, v := range s.vars {
		state := "unassigned"
		if v.IsAssigned {
			state = v.Value.String()
		}
		fmt.Fprintf(&sb, "  %-20s  %-9s = %s (zone %d)\n", v.Name, v.Value.Kind, state, v.ZoneID)
	}
	return sb.String()
}
