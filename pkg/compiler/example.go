package compiler

import "os"

// ExampleProgram is the canonical ZenLang sample showing every language
// feature the compiler understands: pragmas, memory zones, immutable
// bindings, functions, and pattern matching.
const ExampleProgram = `# ZenLang Example Program
#pragma braces
#pragma pattern-match
#pragma auto-curry

# Memory zone for fast calculations
zone fast_math

# Immutable variables - once assigned, cannot change
let x = 42
let name = "ZenLang"
let pi = 3.14159

# Function with auto-currying support
fn add(a, b) {
    return a + b
}

# Pattern matching function
fn process_data(input) {
    match input {
        case "number" => return "Processing number"
        case "string" => return "Processing string"
        case * => return "Unknown type"
    }
}
`

// WriteExampleProgram writes ExampleProgram to path.
func WriteExampleProgram(path string) error {
	return os.WriteFile(path, []byte(ExampleProgram), 0644)
}
