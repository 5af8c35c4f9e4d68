// Command ascent is a line calculator over the ascent expression engine.
// Each argument, or each line of stdin when no arguments are given, is one
// expression; assignments persist across lines, so
//
//	echo "x = 5
//	x + 1" | ascent
//
// prints 5 and 6.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/recascent/ascent"
)

func main() {
	log.SetFlags(0)
	var (
		varsFile string
		verb     string
		given    [][2]string
		integer  bool
		verbose  bool
	)
	addGiven := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=expression", not %q`, s)
		}
		given = append(given, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&varsFile, "vars", "", "YAML file of name: expression variable definitions")
	flag.StringVar(&verb, "fmt", "", "result formatting string (default %g, or %d with -int)")
	flag.Func("given", "name=expression variable definition (any number of times)", addGiven)
	flag.BoolVar(&integer, "int", false, "compute with 64-bit integers instead of floats")
	flag.BoolVar(&verbose, "v", false, "log lexer diagnostics")
	flag.Parse()

	var diag *slog.Logger
	if verbose {
		diag = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	if integer {
		if verb == "" {
			verb = "%d"
		}
		run(ascent.New[int64](ascent.WithDiagnostics[int64](diag)), verb, given, varsFile)
		return
	}
	if verb == "" {
		verb = "%g"
	}
	run(ascent.New[float64](ascent.WithDiagnostics[float64](diag)), verb, given, varsFile)
}

func run[T ascent.Num](p *ascent.Parser[T], verb string, given [][2]string, varsFile string) {
	for _, d := range given {
		v, err := p.Parse(d[1])
		if err != nil {
			log.Fatalf("setting %s: %v", d[0], err)
		}
		p.SetVar(d[0], v)
	}
	if varsFile != "" {
		if err := loadVars(p, varsFile); err != nil {
			log.Fatal(err)
		}
	}

	exprs := flag.Args()
	if len(exprs) == 0 {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			eval(p, sc.Text(), verb)
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
		return
	}
	for _, src := range exprs {
		eval(p, src, verb)
	}
}

var errc = color.New(color.FgRed)

func eval[T ascent.Num](p *ascent.Parser[T], src, verb string) {
	if strings.TrimSpace(src) == "" {
		return
	}
	v, err := p.Parse(src)
	if err != nil {
		errc.Fprintln(os.Stderr, err)
		return
	}
	fmt.Printf(verb+"\n", v)
}

// loadVars defines variables from a YAML mapping of names to expressions.
// Definitions are evaluated in name order, so later names may use earlier
// ones.
func loadVars[T ascent.Num](p *ascent.Parser[T], path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	defs := make(map[string]string)
	if err := yaml.Unmarshal(b, &defs); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		v, err := p.Parse(defs[name])
		if err != nil {
			return fmt.Errorf("setting %s: %w", name, err)
		}
		p.SetVar(name, v)
	}
	return nil
}
