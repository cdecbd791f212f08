package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xyproto/env/v2"

	"zenlang/pkg/compiler"
	"zenlang/pkg/utils"
)

const testSource = `let x = 42
let name = "ZenLang"
fn greet
`

func usage() {
	fmt.Println("ZenLang Compiler v1.0")
	fmt.Println("Usage: zenc [flags] <input.zen>")
	fmt.Println()
	fmt.Println("Language Features:")
	fmt.Println("1. Immutable Dynamic Typing - Variables can't be reassigned once set")
	fmt.Println("2. Pragma-controlled Syntax - Choose brace style with #pragma")
	fmt.Println("3. Pattern Matching - Gated behind #pragma pattern-match")
	fmt.Println("4. Auto-currying - Functions curry when partially applied")
	fmt.Println("5. Memory Zones - Named fixed-capacity allocation zones")
	fmt.Println()
	flag.PrintDefaults()
}

func main() {
	outPath := flag.String("out", env.Str("ZENC_OUT", ""), "output listing path (default: input with .s extension)")
	dumpTokens := flag.Bool("tokens", false, "print the token stream")
	writeExample := flag.Bool("example", false, "write example.zen and exit")
	flag.Usage = usage
	flag.Parse()

	if *writeExample {
		if err := compiler.WriteExampleProgram("example.zen"); err != nil {
			fmt.Fprintln(os.Stderr, "write error:", err)
			os.Exit(1)
		}
		fmt.Println("Created example program: example.zen")
		fmt.Println("Try: zenc example.zen")
		return
	}

	src := testSource
	inPath := ""
	if flag.NArg() > 0 {
		inPath = flag.Arg(0)
		fullPath, _, err := utils.GetPathInfo(inPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "path error:", err)
			os.Exit(1)
		}
		data, err := os.ReadFile(fullPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
		src = string(data)
	}

	fmt.Println("ZenLang Compiler v1.0")
	if inPath != "" {
		fmt.Println("Compiling:", inPath)
	}
	fmt.Println("Features: Immutable dynamic typing, Pattern matching, Auto-currying, Memory zones")
	fmt.Println()

	c := compiler.NewCompilation()
	c.Scan(src)

	if *dumpTokens {
		fmt.Printf("Tokens (%d)\n", len(c.Tokens))
		for _, tok := range c.Tokens {
			fmt.Println(" ", tok)
		}
		fmt.Println()
	}

	c.Dispatch()

	for _, line := range c.Log {
		fmt.Println(line)
	}
	for _, d := range c.Diagnostics {
		fmt.Fprintln(os.Stderr, "warning:", d)
	}
	for _, err := range c.Fatals {
		fmt.Fprintln(os.Stderr, "error:", err)
	}

	listing := compiler.Emit(c.Symbols, c.Functions)

	dest := *outPath
	if dest == "" {
		if inPath != "" {
			dest = utils.ListingPath(inPath)
		} else {
			dest = "output.s"
		}
	}
	if err := compiler.WriteListingFile(dest, listing); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("\nAssembly code generated:", dest)

	fmt.Println("\nCompilation Statistics:")
	fmt.Print(c.Stats())
}
