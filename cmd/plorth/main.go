// Command plorth is a thin driver around the execution core: it is not
// a full Plorth reader (one is explicitly out of scope, spec §1, "CLI"
// being an external collaborator), only a line-oriented harness for
// exercising the string prototype's built-in words from the command
// line. Grounded on gelo's flag-based CLI (src/tools/gelrun.go) rather
// than a cobra-style command tree, since the teacher itself reaches for
// nothing heavier than stdlib flag.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/helvm/plorth/context"
	"github.com/helvm/plorth/runtime"
	"github.com/helvm/plorth/value"
)

var (
	trace = flag.Bool("trace", false, "log runtime trace output to stderr")
)

func main() {
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: plorth [-trace] <file>")
		os.Exit(1)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "plorth:", err)
		os.Exit(1)
	}
	defer f.Close()

	opts := []runtime.Option{}
	if *trace {
		opts = append(opts, runtime.WithTracef(func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "plorth: "+format+"\n", args...)
		}))
	}

	rt := runtime.New(opts...)
	ctx := rt.NewContext()
	ctx.SetFilename(flag.Arg(0))

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		runLine(ctx, scanner.Text())
		if e := ctx.Error(); e != nil {
			fmt.Fprintf(os.Stderr, "%s:%d: %s\n", flag.Arg(0), lineNo, e.String())
			os.Exit(1)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "plorth:", err)
		os.Exit(1)
	}

	for _, v := range ctx.Values() {
		fmt.Println(v.Source())
	}
}

// runLine tokenizes line on whitespace and executes each token as a
// literal (a quoted Go string, a number, or a "true"/"false"/"null"
// keyword) or as a word lookup, mirroring the toy token loop a host
// embedding the core would drive itself — the real Plorth reader that
// understands arrays, objects, and quotations in source form is outside
// this core's scope.
func runLine(ctx *context.Context, line string) {
	for _, token := range strings.Fields(line) {
		if ctx.Error() != nil {
			return
		}
		switch {
		case token == "true":
			ctx.PushBoolean(true)
		case token == "false":
			ctx.PushBoolean(false)
		case token == "null":
			ctx.PushNull()
		case strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`) && len(token) >= 2:
			ctx.PushStringText(strings.Trim(token, `"`))
		default:
			if _, err := strconv.ParseFloat(token, 64); err == nil {
				ctx.PushNumber(token)
				continue
			}
			q, ok := ctx.Resolve(token)
			if !ok {
				ctx.SetError(value.CodeReference, fmt.Sprintf("Unknown word: %s.", token))
				return
			}
			ctx.Invoke(q)
		}
	}
}
