package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nazrin/homefinder/renderer"
)

type loginCmd struct {
	username string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "check credentials and show the account's workflow" }
func (*loginCmd) Usage() string {
	return `hf login -u <username> -p <password>

  Authenticates against the users file. The match is exact and
  case-sensitive on both username and password. There is no session:
  commands that need an account take the credentials themselves.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username.")
	f.StringVar(&c.password, "p", "", "Password.")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.Welcome(user))
	return subcommands.ExitSuccess
}
