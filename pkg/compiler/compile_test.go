package compiler

import (
	"strings"
	"testing"
)

func TestCompile(t *testing.T) {
	t.Run("SimpleProgram", func(t *testing.T) {
		res := Compile("let x = 42\nlet name = \"Zen\"\n")

		if res.Stats.Variables != 2 {
			t.Errorf("variables: got %d, want 2", res.Stats.Variables)
		}
		if res.Stats.Zones != 1 {
			t.Errorf("zones: got %d, want 1 (global)", res.Stats.Zones)
		}
		if len(res.Diagnostics) != 0 || len(res.Fatals) != 0 {
			t.Errorf("diagnostics %v, fatals %v", res.Diagnostics, res.Fatals)
		}
		if !strings.Contains(res.Listing, "x: .quad 42.000000") ||
			!strings.Contains(res.Listing, `name: .asciz "Zen"`) {
			t.Errorf("listing:\n%s", res.Listing)
		}
	})

	t.Run("DiagnosticsDoNotStopTheRun", func(t *testing.T) {
		res := Compile("let x = 1\nlet x = 2\nlet y = 3\n")

		if len(res.Diagnostics) != 1 {
			t.Fatalf("diagnostics: %v", res.Diagnostics)
		}
		// The listing is still produced, with the surviving values.
		if !strings.Contains(res.Listing, "x: .quad 1.000000") {
			t.Errorf("x lost its first value:\n%s", res.Listing)
		}
		if !strings.Contains(res.Listing, "y: .quad 3.000000") {
			t.Errorf("statement after the violation skipped:\n%s", res.Listing)
		}
	})

	t.Run("StatsReflectPragmas", func(t *testing.T) {
		res := Compile("#pragma pattern-match\n#pragma auto-curry\n#pragma no-braces\n")

		if res.Stats.UseBraces {
			t.Error("UseBraces should be off")
		}
		if !res.Stats.PatternMatching || !res.Stats.AutoCurry {
			t.Errorf("stats: %+v", res.Stats)
		}
	})

	t.Run("ExampleProgramCompiles", func(t *testing.T) {
		res := Compile(ExampleProgram)

		if res.Stats.Variables != 3 {
			t.Errorf("variables: got %d, want 3", res.Stats.Variables)
		}
		if res.Stats.Functions != 2 {
			t.Errorf("functions: got %d, want 2", res.Stats.Functions)
		}
		if res.Stats.Zones != 2 {
			t.Errorf("zones: got %d, want 2 (global + fast_math)", res.Stats.Zones)
		}
		for _, want := range []string{"add:", "process_data:", "pi: .quad 3.141590"} {
			if !strings.Contains(res.Listing, want) {
				t.Errorf("missing %q in listing:\n%s", want, res.Listing)
			}
		}
	})
}

func TestCompilationsAreIndependent(t *testing.T) {
	Compile("#pragma auto-curry\nzone scratch\n")
	res := Compile("let x = 1\n")

	if res.Stats.AutoCurry {
		t.Error("flag leaked across compilations")
	}
	if res.Stats.Zones != 1 {
		t.Errorf("zone leaked across compilations: %d", res.Stats.Zones)
	}
}
