package homefinder

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/nazrin/homefinder/date"
)

// Default file names inside the data directory. The listings file is
// comma-separated, the sale ledger tab-separated, the users file
// comma-separated without a header.
const (
	PropertiesFile = "properties.csv"
	SalesFile      = "transactions.txt"
	UsersFile      = "users.txt"
)

// ErrBadCredentials is returned by Authenticate when no stored user
// matches the given username and password exactly.
var ErrBadCredentials = errors.New("unknown username or wrong password")

// ErrUsernameTaken is returned by Signup when the username already exists.
var ErrUsernameTaken = errors.New("username already taken")

// Store owns the three flat data files of a data directory. It is
// constructed once by the composition root and passed to whatever needs
// it; it keeps no in-memory state, every read goes back to disk.
//
// There is no file locking: the Store assumes it is the only writer.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir. Call Init before the first read.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory the store is rooted at.
func (s *Store) Dir() string { return s.dir }

func (s *Store) propertiesPath() string { return filepath.Join(s.dir, PropertiesFile) }
func (s *Store) salesPath() string      { return filepath.Join(s.dir, SalesFile) }
func (s *Store) usersPath() string      { return filepath.Join(s.dir, UsersFile) }

// Init creates any missing data file. The listings and ledger files get
// their header row, the users file is created empty. Existing files are
// left untouched, so calling Init repeatedly is safe.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("cannot create data directory %q: %w", s.dir, err)
	}
	if err := createWithHeader(s.propertiesPath(), PropertiesHeader); err != nil {
		return err
	}
	if err := createWithHeader(s.salesPath(), SalesHeader); err != nil {
		return err
	}
	return createWithHeader(s.usersPath(), "")
}

// createWithHeader creates the file with a single header line unless it
// already exists. An empty header creates an empty file.
func createWithHeader(path, header string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot stat %q: %w", path, err)
	}
	content := ""
	if header != "" {
		content = header + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("cannot initialize %q: %w", path, err)
	}
	return nil
}

// readRows opens the file and calls parse on every data line. The first
// line is skipped when skipHeader is set. A line that fails to parse is
// logged and skipped; only I/O failures are returned as errors.
func readRows(path string, skipHeader bool, parse func(line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first && skipHeader {
			first = false
			continue
		}
		first = false
		if line == "" {
			continue
		}
		if err := parse(line); err != nil {
			log.Printf("skipping malformed row in %s: %q: %v", filepath.Base(path), line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("cannot read %q: %w", path, err)
	}
	return nil
}

// appendRow opens the file in append mode and writes a single row. The
// existing content is never rewritten.
func appendRow(path, row string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot open %q for append: %w", path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(row + "\n"); err != nil {
		return fmt.Errorf("cannot append to %q: %w", path, err)
	}
	return nil
}

// ReadProperties returns every well-formed listing, in file order.
// Malformed rows are logged and skipped. A missing file surfaces as
// fs.ErrNotExist for the caller to degrade to an empty listing.
func (s *Store) ReadProperties() ([]Property, error) {
	var properties []Property
	err := readRows(s.propertiesPath(), true, func(line string) error {
		p, err := parsePropertyRow(line)
		if err != nil {
			return err
		}
		properties = append(properties, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return properties, nil
}

// AppendProperty writes one new listing at the end of the listings file.
func (s *Store) AppendProperty(p Property) error {
	return appendRow(s.propertiesPath(), encodePropertyRow(p))
}

// RewriteProperties replaces the whole listings file with the given
// listings, in slice order. There is no in-place row update: removals
// and edits go through a full rewrite.
func (s *Store) RewriteProperties(properties []Property) error {
	path := s.propertiesPath()
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot rewrite %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, PropertiesHeader)
	for _, p := range properties {
		fmt.Fprintln(w, encodePropertyRow(p))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("cannot rewrite %q: %w", path, err)
	}
	return nil
}

// ReadSales returns every well-formed sale sorted by date ascending,
// keeping the file order among sales of the same day. Rows with a
// malformed field or an unparseable date are logged and skipped.
func (s *Store) ReadSales() ([]Sale, error) {
	var sales []Sale
	err := readRows(s.salesPath(), true, func(line string) error {
		sale, err := parseSaleRow(line)
		if err != nil {
			return err
		}
		sales = append(sales, sale)
		return nil
	})
	if err != nil {
		return nil, err
	}
	SortSalesByDate(sales)
	return sales, nil
}

// AppendSale writes one sale at the end of the ledger. Sales are
// append-only; there is no rewrite path for the ledger.
func (s *Store) AppendSale(sale Sale) error {
	return appendRow(s.salesPath(), encodeSaleRow(sale))
}

// ReadUsers returns every well-formed user, in file order. Rows with a
// wrong field count or an unknown role are logged and skipped.
func (s *Store) ReadUsers() ([]User, error) {
	var users []User
	err := readRows(s.usersPath(), false, func(line string) error {
		u, err := parseUserRow(line)
		if err != nil {
			return err
		}
		users = append(users, u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// AppendUser writes one user at the end of the users file.
func (s *Store) AppendUser(u User) error {
	return appendRow(s.usersPath(), encodeUserRow(u))
}

// Signup stores a new user, rejecting a username that already exists.
// The check and the append are not atomic; the Store assumes it is the
// only writer.
func (s *Store) Signup(u User) error {
	users, err := s.ReadUsers()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if _, found := FindUser(users, u.Username()); found {
		return fmt.Errorf("%w: %q", ErrUsernameTaken, u.Username())
	}
	return s.AppendUser(u)
}

// Authenticate loads the users file and returns the first user whose
// username and password both match exactly, case included. A missing
// users file authenticates nobody.
func (s *Store) Authenticate(username, password string) (User, error) {
	users, err := s.ReadUsers()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return User{}, err
	}
	u, ok := Authenticate(users, username, password)
	if !ok {
		return User{}, ErrBadCredentials
	}
	return u, nil
}

// Purchase records the sale of listings[i] on the given day: it appends
// the sale to the ledger, removes the listing, and rewrites the listings
// file. It returns the remaining listings and the recorded sale.
//
// The two writes are not atomic. If the rewrite fails after the append
// succeeded, the ledger holds the sale but the listing is still on file;
// the caller is told through the returned error and has to reconcile by
// hand.
func (s *Store) Purchase(listings []Property, i int, on date.Date) ([]Property, Sale, error) {
	if i < 0 || i >= len(listings) {
		return listings, Sale{}, fmt.Errorf("no listing at position %d, have %d listings", i+1, len(listings))
	}
	sale := Purchase(listings[i], on)
	if err := s.AppendSale(sale); err != nil {
		return listings, Sale{}, err
	}
	remaining := append(append([]Property{}, listings[:i]...), listings[i+1:]...)
	if err := s.RewriteProperties(remaining); err != nil {
		return listings, sale, fmt.Errorf("sale recorded but listing not removed: %w", err)
	}
	return remaining, sale, nil
}
