package main

import (
	"context"
	"fmt"
	"io/ioutil"
	stdlog "log"
	"os"

	"github.com/go-logr/stdr"
	"github.com/urfave/cli/v2"
	"github.com/vvakame/gqlprep/internal/log"
	"github.com/vvakame/gqlprep/prep"
)

func main() {
	app := &cli.App{
		Name:  "gqlprep",
		Usage: "inline fragments and group GraphQL operations for code generation",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "v",
				Usage: "log verbosity",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "inline",
				Usage:     "expand fragment spreads of a document in place",
				ArgsUsage: "<file>",
				Action:    inlineAction,
			},
			{
				Name:      "split",
				Usage:     "list the definitions found in raw text",
				ArgsUsage: "<file>",
				Action:    splitAction,
			},
			{
				Name:      "generate",
				Usage:     "split, group and run the code generator",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Value: "gqlprep.yaml",
						Usage: "generation config file",
					},
				},
				Action: generateAction,
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newContext(c *cli.Context) context.Context {
	stdr.SetVerbosity(c.Int("v"))
	logger := stdr.New(stdlog.New(os.Stderr, "", stdlog.LstdFlags))
	return log.WithLogger(c.Context, logger)
}

func readInput(c *cli.Context) (string, error) {
	if c.NArg() == 0 {
		b, err := ioutil.ReadAll(os.Stdin)
		return string(b), err
	}

	b, err := ioutil.ReadFile(c.Args().First())
	return string(b), err
}

func inlineAction(c *cli.Context) error {
	text, err := readInput(c)
	if err != nil {
		return err
	}

	result, err := prep.Inline(newContext(c), text)
	if err != nil {
		return err
	}

	fmt.Print(result)
	return nil
}

func splitAction(c *cli.Context) error {
	text, err := readInput(c)
	if err != nil {
		return err
	}

	defs, err := prep.Split(text)
	if err != nil {
		return err
	}

	for _, def := range defs {
		fmt.Printf("%s\t%s\n", def.Kind, def.Name)
	}
	return nil
}

func generateAction(c *cli.Context) error {
	cfg, err := prep.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	text, err := readInput(c)
	if err != nil {
		return err
	}

	return prep.Generate(newContext(c), cfg, text)
}
