package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nazrin/homefinder"
	"github.com/nazrin/homefinder/renderer"
)

type historyCmd struct {
	projectName string
	n           int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the last sales recorded for a project" }
func (*historyCmd) Usage() string {
	return `hf history -project <name> [-n <count>]

  Shows the last n sales for a project, oldest first. The ledger is read
  sorted by date ascending; the window is its tail.

Usage Examples:
$ hf history -project Desa
$ hf history -project Desa -n 10
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.projectName, "project", "", "Project/scheme name (case-insensitive).")
	f.IntVar(&c.n, "n", 5, "Number of sales to show.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.projectName == "" {
		fmt.Fprintln(os.Stderr, "Error: -project is required.")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	sales, err := readSales(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	window := homefinder.LastN(homefinder.FilterSalesByProject(sales, c.projectName), c.n)
	printMarkdown(renderer.Sales(c.projectName, window))
	return subcommands.ExitSuccess
}
