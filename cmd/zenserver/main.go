// zenserver is a deliberately tiny demonstration listener: it accepts
// one connection at a time, reads a single HTTP request, and answers
// with an HTML page showing the compile result for a ZenLang source.
package main

import (
	"bufio"
	"fmt"
	"html"
	"log"
	"net"
	"os"
	"strings"

	"github.com/xyproto/env/v2"

	"zenlang/pkg/compiler"
)

func main() {
	addr := env.Str("ZENSERVER_ADDR", ":"+env.Str("PORT", "8080"))

	src := compiler.ExampleProgram
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatalf("read source: %v", err)
		}
		src = string(data)
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("listen on %s: %v", addr, err)
	}
	defer ln.Close()
	fmt.Printf("Server listening on %s\n", addr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			log.Printf("accept: %v", err)
			continue
		}
		serveOne(conn, src)
	}
}

// serveOne reads one request off conn, writes the canned response, and
// closes the connection. One request per connection, one connection at
// a time.
func serveOne(conn net.Conn, src string) {
	defer conn.Close()

	// Consume the request line and headers; the contents do not matter.
	r := bufio.NewReader(conn)
	for {
		line, err := r.ReadString('\n')
		if err != nil || strings.TrimRight(line, "\r\n") == "" {
			break
		}
	}

	body := renderPage(src)
	fmt.Fprintf(conn, "HTTP/1.1 200 OK\r\n")
	fmt.Fprintf(conn, "Content-Type: text/html\r\n")
	fmt.Fprintf(conn, "Content-Length: %d\r\n", len(body))
	fmt.Fprintf(conn, "Connection: close\r\n\r\n")
	fmt.Fprint(conn, body)
}

func renderPage(src string) string {
	res := compiler.Compile(src)

	var sb strings.Builder
	sb.WriteString("<html><head><title>ZenLang Compiler</title></head><body>\n")
	sb.WriteString("<h1>ZenLang Compiler</h1>\n")

	sb.WriteString("<h2>Source</h2>\n<pre>")
	sb.WriteString(html.EscapeString(src))
	sb.WriteString("</pre>\n")

	if len(res.Diagnostics) > 0 {
		sb.WriteString("<h2>Diagnostics</h2>\n<ul>\n")
		for _, d := range res.Diagnostics {
			fmt.Fprintf(&sb, "<li>%s</li>\n", html.EscapeString(d.String()))
		}
		sb.WriteString("</ul>\n")
	}

	sb.WriteString("<h2>Listing</h2>\n<pre>")
	sb.WriteString(html.EscapeString(res.Listing))
	sb.WriteString("</pre>\n")

	sb.WriteString("<h2>Statistics</h2>\n<pre>")
	sb.WriteString(html.EscapeString(res.Stats.String()))
	sb.WriteString("</pre>\n")

	sb.WriteString("</body></html>\n")
	return sb.String()
}
