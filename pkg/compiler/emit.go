package compiler

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Emitter renders symbol and function table contents into an assembly
// listing. The output is a structural skeleton: data declarations plus
// empty-bodied function labels, never runnable code.
type Emitter struct {
	out strings.Builder
}

func (e *Emitter) line(format string, args ...any) {
	fmt.Fprintf(&e.out, format+"\n", args...)
}

func (e *Emitter) comment(format string, args ...any) {
	e.line("    # "+format, args...)
}

// Emit produces the full listing text: the data section for assigned
// variables in insertion order, the text section with one empty-bodied
// label per function in insertion order, then the fixed exit trailer.
func Emit(syms *SymbolTable, funcs *FunctionTable) string {
	e := &Emitter{}

	e.line(".section .data")
	for _, v := range syms.Variables() {
		if !v.IsAssigned {
			continue
		}
		switch v.Value.Kind {
		case KindNumber:
			e.line("%s: .quad %f", v.Name, v.Value.Num)
		case KindString:
			e.line("%s: .asciz \"%s\"", v.Name, v.Value.Str)
		}
	}

	e.line("")
	e.line(".section .text")
	e.line(".global _start")
	e.line("")
	e.line("_start:")
	e.comment("compiled ZenLang program")

	for _, fn := range funcs.Functions() {
		e.line("")
		e.line("%s:", fn.Name)
		e.comment("Function: %s", fn.Name)
		if fn.IsCurried {
			e.comment("Curried function (level %d)", fn.CurryLevel)
		}
		e.line("    ret")
	}

	e.line("")
	e.comment("Exit program")
	e.line("    mov $60, %%rax")
	e.line("    mov $0, %%rdi")
	e.line("    syscall")

	return e.out.String()
}

// WriteListing writes an already-emitted listing to w. A write failure
// is fatal to this call only.
func WriteListing(w io.Writer, listing string) error {
	if _, err := io.WriteString(w, listing); err != nil {
		return fmt.Errorf("emit failure: %w", err)
	}
	return nil
}

// WriteListingFile writes the listing to path, creating or truncating
// the file.
func WriteListingFile(path, listing string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("emit failure: cannot create %q: %w", path, err)
	}
	defer f.Close()
	return WriteListing(f, listing)
}
