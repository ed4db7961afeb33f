package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nazrin/homefinder/renderer"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display all property listings" }
func (*listCmd) Usage() string {
	return `hf list

  Displays every property on file, in file order. The row number is the
  handle that 'hf buy -i' takes.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	properties, err := readProperties(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading listings: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Properties("Property Listings", properties))
	return subcommands.ExitSuccess
}
