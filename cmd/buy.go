package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nazrin/homefinder/date"
	"github.com/nazrin/homefinder/renderer"
)

type buyCmd struct {
	username string
	password string
	index    int
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "purchase a listed property (buyers only)" }
func (*buyCmd) Usage() string {
	return `hf buy -u <username> -p <password> -i <n>

  Purchases the n-th property of 'hf list' (1-based). Records the sale
  in the ledger with today's date, removes the listing, and rewrites the
  listings file. The account must have the buyer role.

Usage Examples:
$ hf buy -u bob -p secret -i 3
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username of the buying account.")
	f.StringVar(&c.password, "p", "", "Password of the buying account.")
	f.IntVar(&c.index, "i", 0, "Listing number, as shown by 'hf list'.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if !user.Role().CanBuy() {
		fmt.Fprintf(os.Stderr, "Error: account %q is not a buyer\n", user.Username())
		return subcommands.ExitFailure
	}

	properties, err := readProperties(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading listings: %v\n", err)
		return subcommands.ExitFailure
	}

	_, sale, err := store.Purchase(properties, c.index-1, date.Today())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording purchase: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Receipt(sale))
	return subcommands.ExitSuccess
}
