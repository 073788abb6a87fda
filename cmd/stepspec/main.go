package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stepspec/stepspec/stepspec"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "tokens":
		return tokensCommand(args[2:])
	case "parse":
		return parseCommand(args[2:])
	case "repl":
		return runREPL()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

// tokensCommand dumps the token classification for each line of the
// input file, optionally after ambiguity resolution and fusion.
func tokensCommand(args []string) error {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	resolve := fs.Bool("resolve", true, "resolve ambiguous operators and fuse compound tokens")
	if err := fs.Parse(args); err != nil {
		return err
	}
	input, err := readInput(fs.Args())
	if err != nil {
		return err
	}

	for _, line := range inputLines(input) {
		tokens := stepspec.Tokenize(line)
		if *resolve {
			resolved, errs := stepspec.ResolveAmbiguousOperators(tokens)
			for _, err := range errs {
				fmt.Fprintln(os.Stderr, err)
			}
			tokens = stepspec.FuseCompoundOperators(resolved)
		}
		fmt.Println(formatTokens(tokens))
	}
	return nil
}

// parseCommand parses each line of the input file as one algorithm
// step and prints the tree, or the diagnostics on failure.
func parseCommand(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}
	input, err := readInput(fs.Args())
	if err != nil {
		return err
	}

	failed := false
	for _, line := range inputLines(input) {
		expr, errs := stepspec.ParseExpression(line)
		if len(errs) > 0 {
			failed = true
			for _, err := range errs {
				fmt.Fprintln(os.Stderr, err)
			}
			continue
		}
		fmt.Println(stepspec.FormatExpr(expr))
	}
	if failed {
		return errors.New("parse failed")
	}
	return nil
}

func readInput(args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("stepspec: input file required")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func inputLines(input string) []string {
	var lines []string
	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func formatTokens(tokens []stepspec.Token) string {
	if len(tokens) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		if tok.Literal == "" {
			parts[i] = tok.Kind.String()
			continue
		}
		parts[i] = fmt.Sprintf("%s(%s)", tok.Kind, tok.Literal)
	}
	return strings.Join(parts, " ")
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags] [file]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  tokens [-resolve=false] <file>")
	fmt.Fprintln(os.Stderr, "    dump the token classification for each step")
	fmt.Fprintln(os.Stderr, "  parse <file>")
	fmt.Fprintln(os.Stderr, "    parse each step and print the expression tree")
	fmt.Fprintln(os.Stderr, "  repl")
	fmt.Fprintln(os.Stderr, "    open the interactive playground")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
