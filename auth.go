package homefinder

// Authenticate scans the users and returns the first one whose username
// and password both match exactly. The comparison is case-sensitive and
// does not trim: "Bob" is not "bob" and " secret" is not "secret".
func Authenticate(users []User, username, password string) (User, bool) {
	for _, u := range users {
		if u.Username() == username && u.Password() == password {
			return u, true
		}
	}
	return User{}, false
}

// FindUser returns the first user with the given username, matched
// case-sensitively.
func FindUser(users []User, username string) (User, bool) {
	for _, u := range users {
		if u.Username() == username {
			return u, true
		}
	}
	return User{}, false
}
