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

type projectsCmd struct{}

func (*projectsCmd) Name() string     { return "projects" }
func (*projectsCmd) Synopsis() string { return "list the distinct project names across all listings" }
func (*projectsCmd) Usage() string {
	return `hf projects

  Prints the distinct scheme/project names, sorted. Useful as input for
  'hf search -project' and 'hf history -project'.
`
}

func (*projectsCmd) SetFlags(f *flag.FlagSet) {}

func (c *projectsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.Projects(homefinder.ProjectNames(properties)))
	return subcommands.ExitSuccess
}
