/*
File    : calf/repl/repl.go
*/

// Package repl implements an interactive Read-Eval-Print Loop over the Calf
// reader pipeline. Unlike an evaluator's REPL, there is no evaluation step:
// each line is lexed, parsed and read, and the resulting host values are
// printed, per spec.md §1's "out of scope... terminal REPL scaffolding"
// note — this is exactly that external collaborator, built in the teacher's
// idiom. Grounded on go-mix/repl/repl.go almost verbatim in shape (banner,
// chzyer/readline, colored output, panic recovery per line), adapted to
// call into package calf instead of go-mix's parser/eval.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/arrdem/calf"
)

// Color definitions for REPL output, matching go-mix/repl's palette:
// - blueColor: decorative separator lines
// - yellowColor: successfully read values
// - redColor: lex/parse/read errors
// - greenColor: banner
// - cyanColor: informational messages
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the configuration needed to run an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl constructs a Repl with the given display configuration.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage instructions to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to calf!")
	cyanColor.Fprintf(writer, "%s\n", "Type a form and press enter to read it")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop: print the banner, then read lines via
// readline until '.exit' or EOF, reading each line through the calf
// pipeline and printing every resulting host value.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	count := 0
	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			break
		}

		rl.SaveHistory(line)
		count++
		r.readWithRecovery(writer, line, count)
	}
}

// readWithRecovery reads one line of input through the calf pipeline,
// printing each resulting value in yellow or any lex/parse/read error in
// red. A panic during reading is caught and reported the same way a
// structured error would be, so one bad line never kills the session.
func (r *Repl) readWithRecovery(writer io.Writer, line string, count int) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	cfg := calf.DefaultConfig()
	cfg.SourceName = fmt.Sprintf("<repl:%d>", count)

	rd := calf.ReadString(line, cfg)
	for {
		value, err := rd.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			redColor.Fprintf(writer, "%s\n", err)
			return
		}
		yellowColor.Fprintf(writer, "%v\n", value)
	}
}
