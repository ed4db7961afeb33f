// Package cmd implements the CLI application to browse, list, and buy
// properties.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/nazrin/homefinder"
)

// commands is the single list of subcommands and their help groups;
// Register and Names both derive from it so completion cannot drift
// from what is registered.
var commands = []struct {
	command subcommands.Command
	group   string
}{
	{&signupCmd{}, "accounts"},
	{&loginCmd{}, "accounts"},

	{&addCmd{}, "listings"},
	{&listCmd{}, "listings"},
	{&searchCmd{}, "listings"},
	{&projectsCmd{}, "listings"},

	{&buyCmd{}, "sales"},
	{&historyCmd{}, "sales"},

	{&topicCmd{}, "documentation"},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, entry := range commands {
		c.Register(entry.command, entry.group)
	}
}

// Names returns the names of all subcommands, for shell completion.
func Names() []string {
	names := make([]string, 0, len(commands))
	for _, entry := range commands {
		names = append(names, entry.command.Name())
	}
	return names
}

// environment holds the settings read from the process environment; flags
// take precedence over it.
type environment struct {
	Dir string `env:"HOMEFINDER_DIR" envDefault:"."`
}

func defaultDir() string {
	var e environment
	if err := env.Parse(&e); err != nil {
		log.Printf("cannot read environment: %v", err)
		return "."
	}
	return e.Dir
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("dir", defaultDir(), "Path to the data directory holding the listings, ledger and users files")

// openStore is the central function constructing the store. It makes
// sure the data files exist, so commands can read without special cases.
func openStore() (*homefinder.Store, error) {
	s := homefinder.NewStore(*dataDir)
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("cannot initialize data directory %q: %w", *dataDir, err)
	}
	return s, nil
}

// readProperties loads the listings, degrading a missing file to an
// empty list with a warning.
func readProperties(s *homefinder.Store) ([]homefinder.Property, error) {
	properties, err := s.ReadProperties()
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, listings file does not exist, starting with an empty list")
		return nil, nil
	}
	return properties, err
}

// readSales loads the ledger, degrading a missing file to an empty list
// with a warning.
func readSales(s *homefinder.Store) ([]homefinder.Sale, error) {
	sales, err := s.ReadSales()
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, sale ledger does not exist, starting with an empty ledger")
		return nil, nil
	}
	return sales, err
}

// printMarkdown renders markdown to the terminal, falling back to the
// raw text when the terminal renderer fails.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
