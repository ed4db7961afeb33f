// Package renderer turns records into markdown suitable for terminal
// display. All functions are pure: they never touch the store.
package renderer

import (
	"fmt"

	"github.com/nazrin/homefinder"
)

// Welcome renders the post-login greeting for a user, pointing at the
// workflow the role allows.
func Welcome(u homefinder.User) string {
	switch {
	case u.Role().CanSell():
		return fmt.Sprintf("# Welcome, %s\n\nYou are signed in as a seller. Use `hf add` to list a property.\n", u.Username())
	case u.Role().CanBuy():
		return fmt.Sprintf("# Welcome, %s\n\nYou are signed in as a buyer. Use `hf search` to find a property and `hf buy` to purchase one.\n", u.Username())
	default:
		return fmt.Sprintf("# Welcome, %s\n", u.Username())
	}
}

// Receipt renders the confirmation shown after a successful purchase.
func Receipt(s homefinder.Sale) string {
	return fmt.Sprintf("# Purchase recorded\n\n%s %s in %s bought on %s for %s.\n",
		s.PropertyType(), s.Address(), s.ProjectName(), s.When(), s.Price().Display())
}
