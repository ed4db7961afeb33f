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

type searchCmd struct {
	minSqFt      int
	maxSqFt      int
	minPrice     string
	maxPrice     string
	propertyType string
	projectName  string
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search the listings by size, price, type and project" }
func (*searchCmd) Usage() string {
	return `hf search [-min-sqft <n>] [-max-sqft <n>] [-min-price <amount>] [-max-price <amount>] [-type <type>] [-project <name>]

  Filters the listings. Omitted bounds are unbounded; type and project
  match exactly but ignore case. The result keeps the file order, so row
  numbers shown here do not line up with 'hf list'.

Usage Examples:
$ hf search -min-price 400000 -max-price 600000 -type condo -project desa
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.minSqFt, "min-sqft", 0, "Minimum size in square feet.")
	f.IntVar(&c.maxSqFt, "max-sqft", 0, "Maximum size in square feet (0 for no limit).")
	f.StringVar(&c.minPrice, "min-price", "0", "Minimum price.")
	f.StringVar(&c.maxPrice, "max-price", "0", "Maximum price (0 for no limit).")
	f.StringVar(&c.propertyType, "type", "", "Property type to match (case-insensitive).")
	f.StringVar(&c.projectName, "project", "", "Project/scheme name to match (case-insensitive).")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	minPrice, err := homefinder.ParseMoney(c.minPrice)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	maxPrice, err := homefinder.ParseMoney(c.maxPrice)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

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

	results := homefinder.FilterProperties(properties, homefinder.SearchCriteria{
		MinSqFt:      c.minSqFt,
		MaxSqFt:      c.maxSqFt,
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		PropertyType: c.propertyType,
		ProjectName:  c.projectName,
	})

	printMarkdown(renderer.Properties("Search Results", results))
	return subcommands.ExitSuccess
}
