package compiler

import (
	"errors"
	"strings"
	"testing"
)

func TestEmit(t *testing.T) {
	t.Run("DataSection", func(t *testing.T) {
		syms := NewSymbolTable()
		syms.Declare("x", KindNumber, 0)
		syms.Assign("x", NumberValue(42))
		syms.Declare("name", KindString, 0)
		syms.Assign("name", StringValue("Zen"))
		syms.Declare("pending", KindNumber, 0) // declared but never assigned

		listing := Emit(syms, NewFunctionTable())

		if !strings.Contains(listing, "x: .quad 42.000000") {
			t.Errorf("missing numeric constant:\n%s", listing)
		}
		if !strings.Contains(listing, `name: .asciz "Zen"`) {
			t.Errorf("missing string constant:\n%s", listing)
		}
		if strings.Contains(listing, "pending") {
			t.Errorf("unassigned variable emitted:\n%s", listing)
		}
		// Insertion order: x before name.
		if strings.Index(listing, "x: .quad") > strings.Index(listing, "name: .asciz") {
			t.Errorf("data section out of order:\n%s", listing)
		}
	})

	t.Run("TextSection", func(t *testing.T) {
		funcs := NewFunctionTable()
		funcs.Declare("add", true)
		fns := funcs.Functions()
		fns[0].ParamCount = 2
		funcs.TryCurry("add", 1, true)

		listing := Emit(NewSymbolTable(), funcs)

		wantInOrder := []string{
			".section .text",
			".global _start",
			"_start:",
			"add:",
			"# Function: add",
			"    ret",
			"add_curried_1:",
			"# Curried function (level 1)",
		}
		last := -1
		for _, want := range wantInOrder {
			idx := strings.Index(listing, want)
			if idx < 0 {
				t.Fatalf("missing %q in:\n%s", want, listing)
			}
			if idx < last {
				t.Fatalf("%q out of order in:\n%s", want, listing)
			}
			last = idx
		}
	})

	t.Run("ExitTrailer", func(t *testing.T) {
		listing := Emit(NewSymbolTable(), NewFunctionTable())
		for _, want := range []string{"mov $60, %rax", "mov $0, %rdi", "syscall"} {
			if !strings.Contains(listing, want) {
				t.Errorf("missing trailer line %q in:\n%s", want, listing)
			}
		}
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk gone")
}

func TestWriteListing(t *testing.T) {
	var sb strings.Builder
	if err := WriteListing(&sb, "hello"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if sb.String() != "hello" {
		t.Errorf("written: %q", sb.String())
	}

	if err := WriteListing(failingWriter{}, "hello"); err == nil {
		t.Fatal("write to failing destination should error")
	}
}
