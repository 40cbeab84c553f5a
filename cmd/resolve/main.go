// Package main provides a CLI tool to try chat lines against the command resolver.
//
// Each line (from the arguments, or stdin when none are given) is resolved
// against the bot's default catalog and printed with its outcome.
//
// Usage:
//
//	resolve [--prefix "!"] [--json] [--match 1] [--suggest 3] [--cap 10] [LINE...]
//
// Example:
//
//	echo '!discrod' | resolve
//	resolve --json 'lurk for a bit' 'thyne'
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/onnwee/chatbot/chat"
	"github.com/onnwee/chatbot/command"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		slog.Error("resolve failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	prefix := fs.String("prefix", "", "Command prefix to strip; lines without it are reported as not commands")
	asJSON := fs.Bool("json", false, "Print one JSON object per line")
	th := command.DefaultThresholds()
	fs.IntVar(&th.Match, "match", th.Match, "Largest distance treated as a match")
	fs.IntVar(&th.Suggest, "suggest", th.Suggest, "Exclusive upper bound for suggestions")
	fs.IntVar(&th.Cap, "cap", th.Cap, "Distance computation cap")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	resolver := &command.Resolver{Catalog: chat.DefaultCatalog(), Thresholds: th}
	out := bufio.NewWriter(stdout)
	defer out.Flush()

	handle := func(line string) error {
		body, ok := command.StripPrefix(line, *prefix)
		if !ok {
			if *asJSON {
				return json.NewEncoder(out).Encode(map[string]any{"line": line, "command": false})
			}
			_, err := fmt.Fprintf(out, "%q\tnot a command\n", line)
			return err
		}
		res := resolver.Resolve(body)
		if *asJSON {
			return json.NewEncoder(out).Encode(map[string]any{"line": line, "command": true, "result": res})
		}
		_, err := fmt.Fprintf(out, "%q\t%s\n", line, describe(res))
		return err
	}

	if fs.NArg() > 0 {
		for _, line := range fs.Args() {
			if err := handle(line); err != nil {
				return err
			}
		}
		return nil
	}

	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		if err := handle(sc.Text()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}

func describe(res command.Result) string {
	var b strings.Builder
	switch res.Outcome {
	case command.Matched:
		fmt.Fprintf(&b, "matched !%s (distance %d)", res.Entry.Display, res.Distance)
	case command.Suggested:
		fmt.Fprintf(&b, "did you mean !%s? (distance %d)", res.Entry.Display, res.Distance)
	default:
		b.WriteString("no match")
	}
	if len(res.Params) > 0 {
		fmt.Fprintf(&b, " params=%q", res.Params)
	}
	return b.String()
}
