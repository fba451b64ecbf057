// Command highlight prints a source file to the terminal with ANSI color
// escapes applied by the prism highlighting engine.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"

	highlight "github.com/eyelash/prism"
)

func setBackgroundColor(c highlight.Color) {
	fmt.Printf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

func applyStyle(s highlight.ThemeStyle) {
	bold, italic := 22, 23
	if s.Bold {
		bold = 1
	}
	if s.Italic {
		italic = 3
	}
	fmt.Printf("\x1b[38;2;%d;%d;%d;%d;%dm", s.Fg.R, s.Fg.G, s.Fg.B, bold, italic)
}

func clearStyle() {
	fmt.Print("\x1b[m")
}

func printSpans(data []byte, spans []highlight.Span, theme highlight.Theme, ws, we int) {
	i := ws
	def := theme.StyleFor(highlight.StyleDefault)
	for _, span := range spans {
		if span.Start > i {
			applyStyle(def)
			os.Stdout.Write(data[i:span.Start])
		}
		applyStyle(theme.StyleFor(span.Style))
		os.Stdout.Write(data[span.Start:span.End])
		i = span.End
	}
	if we > i {
		applyStyle(def)
		os.Stdout.Write(data[i:we])
	}
}

func main() {
	themeName := flag.String("theme", "one-dark", "theme name")
	chunkSize := flag.Int("chunk", 0, "re-highlight in chunks of this many bytes, simulating a scrolling viewport (0 = whole file at once)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s FILE\n", os.Args[0])
		os.Exit(1)
	}
	path := flag.Arg(0)

	language, ok := highlight.GetLanguage(filepath.Base(path))
	if !ok {
		fmt.Fprintln(os.Stderr, "prism does not currently support this language")
		os.Exit(1)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	theme := highlight.GetTheme(*themeName)
	input := highlight.NewStringInput(data)
	cache := highlight.NewCache()

	setBackgroundColor(theme.Background)
	fmt.Println()

	step := *chunkSize
	if step <= 0 {
		step = len(data)
		if step == 0 {
			step = 1
		}
	}
	for ws := 0; ws < len(data); ws += step {
		we := int(math.Min(float64(ws+step), float64(len(data))))
		spans := highlight.Highlight(language, input, cache, ws, we)
		printSpans(data, spans, theme, ws, we)
	}

	clearStyle()
	fmt.Println()
}
