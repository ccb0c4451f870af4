package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pontaoski/monkey/config"
	"github.com/pontaoski/monkey/evaluator"
	"github.com/pontaoski/monkey/object"
)

// repl evaluates one line at a time in a single environment, so bindings
// persist between lines. An error is printed, any bindings the failed line
// made are dropped, and the loop carries on.
func repl(in io.Reader, out io.Writer, settings config.Settings) error {
	errColor := color.New(color.FgRed)
	if !settings.Color {
		errColor.DisableColor()
	}

	e := evaluator.New(settings)
	env := object.NewEnvironment(nil)
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, settings.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "exit":
			return nil
		case "":
			continue
		}

		program, err := e.Parse(line)
		if err != nil {
			errColor.Fprintln(out, "Error:", err)
			continue
		}

		saved := env.Snapshot()
		v, err := e.Eval(program, env)
		if err != nil {
			env.Restore(saved)
			errColor.Fprintln(out, "Error:", err)
			continue
		}
		fmt.Fprintln(out, v.Inspect())
	}
}
