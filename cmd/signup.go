package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nazrin/homefinder"
)

type signupCmd struct {
	username string
	password string
	email    string
	role     string
}

func (*signupCmd) Name() string     { return "signup" }
func (*signupCmd) Synopsis() string { return "create a new user account" }
func (*signupCmd) Usage() string {
	return `hf signup -u <username> -p <password> -email <email> -role <seller|buyer>

  Creates a new account. Usernames are unique and case-sensitive.

Usage Examples:
$ hf signup -u bob -p secret -email bob@example.com -role buyer
`
}

func (c *signupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username for the new account.")
	f.StringVar(&c.password, "p", "", "Password for the new account.")
	f.StringVar(&c.email, "email", "", "Email address for the new account.")
	f.StringVar(&c.role, "role", "buyer", "Role of the new account (seller or buyer).")
}

func (c *signupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	role, err := homefinder.ParseRole(c.role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	user, err := homefinder.NewUser(homefinder.UserSpec{
		Username: c.username,
		Password: c.password,
		Email:    c.email,
		Role:     role,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.Signup(user); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating account: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Account %q created with role %s\n", user.Username(), user.Role())
	return subcommands.ExitSuccess
}
