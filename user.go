package homefinder

import (
	"errors"
	"fmt"
	"strings"
)

// Role tags a user with the workflow they are allowed to drive.
type Role int

const (
	// Seller may add new property listings.
	Seller Role = iota
	// Buyer may purchase listed properties.
	Buyer
)

func (r Role) String() string {
	switch r {
	case Seller:
		return "SELLER"
	case Buyer:
		return "BUYER"
	default:
		return "UNKNOWN"
	}
}

// ParseRole parses a role string, ignoring case and surrounding spaces.
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SELLER":
		return Seller, nil
	case "BUYER":
		return Buyer, nil
	default:
		return 0, fmt.Errorf("unknown role: %q", s)
	}
}

// CanSell reports whether the role permits listing properties.
func (r Role) CanSell() bool { return r == Seller }

// CanBuy reports whether the role permits purchasing properties.
func (r Role) CanBuy() bool { return r == Buyer }

// User is a stored account. Credentials are kept in plain text in the
// users file; there is no hashing and no session state.
type User struct {
	username string
	password string
	email    string
	role     Role
}

// UserSpec carries the raw field values for a new User.
type UserSpec struct {
	Username string
	Password string
	Email    string
	Role     Role
}

// NewUser validates the spec and returns the immutable record.
func NewUser(spec UserSpec) (User, error) {
	var errs error
	if spec.Username == "" {
		errs = errors.Join(errs, errors.New("username is missing"))
	}
	if spec.Password == "" {
		errs = errors.Join(errs, errors.New("password is missing"))
	}
	if spec.Email == "" {
		errs = errors.Join(errs, errors.New("email is missing"))
	}
	// Users persist as comma-separated rows.
	for _, f := range []struct{ name, value string }{
		{"username", spec.Username},
		{"password", spec.Password},
		{"email", spec.Email},
	} {
		if err := validRowField(f.name, f.value, ","); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return User{}, fmt.Errorf("invalid user: %w", errs)
	}
	return User{
		username: spec.Username,
		password: spec.Password,
		email:    spec.Email,
		role:     spec.Role,
	}, nil
}

func (u User) Username() string { return u.username }
func (u User) Password() string { return u.password }
func (u User) Email() string    { return u.email }
func (u User) Role() Role       { return u.role }

// Equal reports whether two users match field for field.
func (u User) Equal(v User) bool { return u == v }
