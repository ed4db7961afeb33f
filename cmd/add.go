package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nazrin/homefinder"
)

type addCmd struct {
	username string
	password string

	sizeSqM      int
	sqFt         int
	propertyType string
	noOfFloors   int
	address      string
	scheme       string
	price        string
	year         int
	pricePerSqft string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new property listing (sellers only)" }
func (*addCmd) Usage() string {
	return `hf add -u <username> -p <password> -type <type> -address <address> -scheme <scheme> [options]

  Validates the property fields and appends the listing to the listings
  file. The account must have the seller role.

Usage Examples:
$ hf add -u sam -p hunter2 -type Condo -address "12 Jalan Desa 3" -scheme Desa \
    -sqm 93 -sqft 1000 -floors 1 -price 500000 -year 2015 -price-per-sqft 500
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username of the selling account.")
	f.StringVar(&c.password, "p", "", "Password of the selling account.")
	f.IntVar(&c.sizeSqM, "sqm", 0, "Size in square metres.")
	f.IntVar(&c.sqFt, "sqft", 0, "Size in square feet.")
	f.StringVar(&c.propertyType, "type", "", "Property type (e.g. Condo, Terrace).")
	f.IntVar(&c.noOfFloors, "floors", 0, "Number of floors.")
	f.StringVar(&c.address, "address", "", "Street address.")
	f.StringVar(&c.scheme, "scheme", "", "Scheme or project the property belongs to.")
	f.StringVar(&c.price, "price", "0", "Asking price.")
	f.IntVar(&c.year, "year", 0, "Year built.")
	f.StringVar(&c.pricePerSqft, "price-per-sqft", "0", "Price per square foot.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	user, err := store.Authenticate(c.username, c.password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Login failed: %v\n", err)
		return subcommands.ExitFailure
	}
	if !user.Role().CanSell() {
		fmt.Fprintf(os.Stderr, "Error: account %q is not a seller\n", user.Username())
		return subcommands.ExitFailure
	}

	price, err := homefinder.ParseMoney(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	pricePerSqft, err := homefinder.ParseMoney(c.pricePerSqft)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	property, err := homefinder.NewProperty(homefinder.PropertySpec{
		SizeSqM:      c.sizeSqM,
		SqFt:         c.sqFt,
		PropertyType: c.propertyType,
		NoOfFloors:   c.noOfFloors,
		Address:      c.address,
		Scheme:       c.scheme,
		Price:        price,
		Year:         c.year,
		PricePerSqft: pricePerSqft,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := store.AppendProperty(property); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing listing: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Listed %s\n", property)
	return subcommands.ExitSuccess
}
