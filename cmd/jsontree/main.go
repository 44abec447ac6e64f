// jsontree - strict JSON validator and canonical formatter.
//
// Usage:
//
//	jsontree fmt [file]     Parse JSON and print its canonical form
//	jsontree check [file]   Validate JSON, report the first fault
//	jsontree tokens [file]  Dump the token stream
//
// If no file is given (or the file is "-"), reads from stdin. This tool is a
// plain external caller of the jsontree package: it only uses the public
// Tokenize/Parse surface.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"

	"github.com/Neumenon/jsontree/jsontree"
)

func main() {
	app := kingpin.New("jsontree", "Strict JSON validator and canonical formatter.")
	addFmtCommand(app)
	addCheckCommand(app)
	addTokensCommand(app)
	kingpin.MustParse(app.Parse(os.Args[1:]))
}

// fmtCommand parses input and prints the canonical textual form.
type fmtCommand struct {
	file *string
}

func (cmd *fmtCommand) run(_ *kingpin.ParseContext) error {
	input, err := readInput(*cmd.file)
	if err != nil {
		exitWithErr(err)
	}
	v, err := jsontree.Parse(input)
	if err != nil {
		exitWithErr(err)
	}
	fmt.Println(v)
	return nil
}

func addFmtCommand(app *kingpin.Application) {
	cmd := &fmtCommand{}
	f := app.Command("fmt", "Parse JSON and print its canonical form.").Action(cmd.run)
	cmd.file = f.Arg("file", "Input file, or - for stdin.").Default("-").String()
}

// checkCommand validates input and reports the first fault.
type checkCommand struct {
	file *string
}

func (cmd *checkCommand) run(_ *kingpin.ParseContext) error {
	input, err := readInput(*cmd.file)
	if err != nil {
		exitWithErr(err)
	}
	if _, err := jsontree.Parse(input); err != nil {
		exitWithErr(err)
	}
	color.New(color.Bold).Println("valid")
	return nil
}

func addCheckCommand(app *kingpin.Application) {
	cmd := &checkCommand{}
	c := app.Command("check", "Validate JSON, report the first fault.").Action(cmd.run)
	cmd.file = c.Arg("file", "Input file, or - for stdin.").Default("-").String()
}

// tokensCommand dumps the token stream, one token per line.
type tokensCommand struct {
	file *string
}

func (cmd *tokensCommand) run(_ *kingpin.ParseContext) error {
	input, err := readInput(*cmd.file)
	if err != nil {
		exitWithErr(err)
	}
	tokens, err := jsontree.Tokenize(input)
	if err != nil {
		exitWithErr(err)
	}
	for _, tok := range tokens {
		fmt.Println(tok)
	}
	return nil
}

func addTokensCommand(app *kingpin.Application) {
	cmd := &tokensCommand{}
	tk := app.Command("tokens", "Dump the token stream.").Action(cmd.run)
	cmd.file = tk.Arg("file", "Input file, or - for stdin.").Default("-").String()
}

func readInput(name string) (string, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

func exitWithErr(err error) {
	color.New(color.FgRed).Fprintln(os.Stderr, err)
	os.Exit(1)
}
