package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordfreq/internal/batch"
	"github.com/dtnitsch/wordfreq/internal/common"
	"github.com/dtnitsch/wordfreq/internal/count"
	"github.com/dtnitsch/wordfreq/internal/exporter"
	"github.com/dtnitsch/wordfreq/internal/history"
	"github.com/dtnitsch/wordfreq/internal/rank"
	"github.com/dtnitsch/wordfreq/pkg/help"
)

var version = "dev"

func newApp() *cli.App {
	return &cli.App{
		Name:    "wordfreq",
		Usage:   "Count word frequencies in text documents",
		Version: version,
		Flags:   common.GlobalFlags(),
		Commands: []*cli.Command{
			count.Command(),
			rank.Command(),
			exporter.Command(),
			batch.Command(),
			history.Command(),
			{
				Name:   "quickstart",
				Usage:  "Print usage examples as YAML",
				Action: quickstartAction,
			},
		},
		Reader:    os.Stdin,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
	}
}

func quickstartAction(c *cli.Context) error {
	_, err := fmt.Fprint(c.App.Writer, help.QuickstartYAML)
	return err
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
