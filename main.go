package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/repr"
	"github.com/pontaoski/monkey/ast"
	"github.com/pontaoski/monkey/config"
	"github.com/pontaoski/monkey/evaluator"
	"github.com/pontaoski/monkey/lexer"
	"github.com/pontaoski/monkey/object"
	"github.com/pontaoski/monkey/parser"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

func parseFile(path string, maxDepth int) (ast.Program, error) {
	handle, err := os.Open(path)
	if err != nil {
		return ast.Program{}, tracerr.Wrap(err)
	}
	defer handle.Close()

	p := parser.NewParser(lexer.NewLexer(handle, path))
	p.MaxDepth = maxDepth
	return p.ParseProgram()
}

func runFile(path string, settings config.Settings, out io.Writer) error {
	program, err := parseFile(path, settings.MaxDepth)
	if err != nil {
		return err
	}

	v, err := evaluator.New(settings).Eval(program, object.NewEnvironment(nil))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, v.Inspect())
	return nil
}

func printTokens(path string, out io.Writer) error {
	handle, err := os.Open(path)
	if err != nil {
		return tracerr.Wrap(err)
	}
	defer handle.Close()

	l := lexer.NewLexer(handle, path)
	for tok := range l.All() {
		fmt.Fprintln(out, tok)
	}
	return l.Err()
}

func initConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	return config.Write(path, config.Default())
}

func loadSettings(c *cli.Context) (config.Settings, error) {
	settings, err := config.Load(c.String("config"))
	if err != nil {
		return settings, fmt.Errorf("error reading %s: %w", c.String("config"), err)
	}
	return settings, nil
}

func requireFile(c *cli.Context) (string, error) {
	file := c.Args().First()
	if file == "" {
		return "", fmt.Errorf("no source file provided")
	}
	return file, nil
}

func main() {
	log.SetFlags(0)

	app := &cli.App{
		Name:  "monkey",
		Usage: "monkey interpreter",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: config.DefaultFile,
			},
			&cli.BoolFlag{
				Name:  "trace",
				Value: false,
			},
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			if c.Bool("trace") {
				tracerr.PrintSourceColor(err)
				os.Exit(1)
			}
			log.Fatalf("monkey: %s", err)
		},
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "write a default configuration file",
				Action: func(c *cli.Context) error {
					return initConfig(c.String("config"))
				},
			},
			{
				Name:  "run",
				Usage: "evaluate a file and print its value",
				Action: func(c *cli.Context) error {
					file, err := requireFile(c)
					if err != nil {
						return err
					}
					settings, err := loadSettings(c)
					if err != nil {
						return err
					}
					return runFile(file, settings, os.Stdout)
				},
			},
			{
				Name:  "parse",
				Usage: "print the parsed program",
				Action: func(c *cli.Context) error {
					file, err := requireFile(c)
					if err != nil {
						return err
					}
					program, err := parseFile(file, parser.DefaultMaxDepth)
					if err != nil {
						return err
					}
					fmt.Println(program)
					return nil
				},
			},
			{
				Name:  "dump",
				Usage: "dump the syntax tree of a file",
				Action: func(c *cli.Context) error {
					file, err := requireFile(c)
					if err != nil {
						return err
					}
					program, err := parseFile(file, parser.DefaultMaxDepth)
					if err != nil {
						return err
					}
					repr.Println(program)
					return nil
				},
			},
			{
				Name:  "tokens",
				Usage: "print the tokens of a file",
				Action: func(c *cli.Context) error {
					file, err := requireFile(c)
					if err != nil {
						return err
					}
					return printTokens(file, os.Stdout)
				},
			},
			{
				Name:  "repl",
				Usage: "read and evaluate lines until exit",
				Action: func(c *cli.Context) error {
					settings, err := loadSettings(c)
					if err != nil {
						return err
					}
					return repl(os.Stdin, os.Stdout, settings)
				},
			},
		},
	}
	app.Run(os.Args)
}
