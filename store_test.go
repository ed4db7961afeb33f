package homefinder

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/nazrin/homefinder/date"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	return s
}

func TestInitIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	// Write something, re-init, and check nothing was touched.
	if err := s.AppendProperty(condoInDesa(t)); err != nil {
		t.Fatalf("AppendProperty() failed: %v", err)
	}
	before, err := os.ReadFile(filepath.Join(s.Dir(), PropertiesFile))
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Init(); err != nil {
		t.Fatalf("second Init() failed: %v", err)
	}
	after, err := os.ReadFile(filepath.Join(s.Dir(), PropertiesFile))
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Errorf("Init() altered an existing file:\nbefore: %q\nafter:  %q", before, after)
	}
}

func TestInitWritesHeaders(t *testing.T) {
	s := newTestStore(t)

	content, err := os.ReadFile(filepath.Join(s.Dir(), PropertiesFile))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != PropertiesHeader+"\n" {
		t.Errorf("properties file content = %q, want header only", content)
	}

	content, err = os.ReadFile(filepath.Join(s.Dir(), SalesFile))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != SalesHeader+"\n" {
		t.Errorf("sales file content = %q, want header only", content)
	}

	content, err = os.ReadFile(filepath.Join(s.Dir(), UsersFile))
	if err != nil {
		t.Fatal(err)
	}
	if len(content) != 0 {
		t.Errorf("users file content = %q, want empty", content)
	}
}

func TestPropertiesRoundTrip(t *testing.T) {
	s := newTestStore(t)

	want := []Property{
		condoInDesa(t),
		mustProperty(t, PropertySpec{
			SizeSqM:      140,
			SqFt:         1500,
			PropertyType: "Terrace",
			NoOfFloors:   2,
			Address:      "8 Jalan Bukit 1",
			Scheme:       "Bukit Indah",
			Price:        M(750000),
			Year:         2019,
			PricePerSqft: M(500),
		}),
	}
	for _, p := range want {
		if err := s.AppendProperty(p); err != nil {
			t.Fatalf("AppendProperty() failed: %v", err)
		}
	}

	got, err := s.ReadProperties()
	if err != nil {
		t.Fatalf("ReadProperties() failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadProperties() = %v, want %v", got, want)
	}
}

func TestReadPropertiesSkipsMalformedRows(t *testing.T) {
	s := newTestStore(t)

	rows := strings.Join([]string{
		PropertiesHeader,
		"93,1000,Condo,1,12 Jalan Desa 3,Desa,500000,2015,500",
		"93,1000,Condo,1,12 Jalan Desa 3", // only 5 fields
		"not-a-number,1000,Condo,1,12 Jalan Desa 3,Desa,500000,2015,500",
	}, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(s.Dir(), PropertiesFile), []byte(rows), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := s.ReadProperties()
	if err != nil {
		t.Fatalf("ReadProperties() failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ReadProperties() returned %d properties, want 1", len(got))
	}
	if !got[0].Equal(condoInDesa(t)) {
		t.Errorf("ReadProperties()[0] = %v, want %v", got[0], condoInDesa(t))
	}
}

func TestReadPropertiesMissingFile(t *testing.T) {
	s := NewStore(t.TempDir()) // no Init
	_, err := s.ReadProperties()
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadProperties() on missing file returned %v, want fs.ErrNotExist", err)
	}
}

func TestRewriteProperties(t *testing.T) {
	s := newTestStore(t)
	p := condoInDesa(t)
	if err := s.AppendProperty(p); err != nil {
		t.Fatal(err)
	}

	if err := s.RewriteProperties(nil); err != nil {
		t.Fatalf("RewriteProperties() failed: %v", err)
	}

	got, err := s.ReadProperties()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("ReadProperties() after empty rewrite = %v, want none", got)
	}

	content, err := os.ReadFile(filepath.Join(s.Dir(), PropertiesFile))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != PropertiesHeader+"\n" {
		t.Errorf("rewrite lost the header: %q", content)
	}
}

func TestSalesRoundTripAndDateFallback(t *testing.T) {
	s := newTestStore(t)

	// Hand-written rows using all three accepted date formats.
	rows := strings.Join([]string{
		SalesHeader,
		"5/3/2023\t93\t1000\tCondo\t1\t12 Jalan Desa 3\tDesa\t500000\t2015\tDesa\t500",
		"05/03/2023\t93\t1000\tCondo\t1\t12 Jalan Desa 3\tDesa\t500000\t2015\tDesa\t500",
		"2023-03-05\t93\t1000\tCondo\t1\t12 Jalan Desa 3\tDesa\t500000\t2015\tDesa\t500",
	}, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(s.Dir(), SalesFile), []byte(rows), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := s.ReadSales()
	if err != nil {
		t.Fatalf("ReadSales() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ReadSales() returned %d sales, want 3", len(got))
	}
	want := date.New(2023, 3, 5)
	for i, sale := range got {
		if sale.When() != want {
			t.Errorf("sale %d date = %v, want %v", i, sale.When(), want)
		}
	}
}

func TestReadSalesSortsByDate(t *testing.T) {
	s := newTestStore(t)

	for _, day := range []string{"2023-03-01", "2023-01-01", "2023-02-01"} {
		if err := s.AppendSale(saleOn(t, day, "Desa")); err != nil {
			t.Fatalf("AppendSale() failed: %v", err)
		}
	}

	got, err := s.ReadSales()
	if err != nil {
		t.Fatal(err)
	}
	var days []string
	for _, sale := range got {
		days = append(days, sale.When().String())
	}
	want := []string{"2023-01-01", "2023-02-01", "2023-03-01"}
	if !reflect.DeepEqual(days, want) {
		t.Errorf("ReadSales() order = %v, want %v", days, want)
	}
}

func TestReadSalesSkipsBadDates(t *testing.T) {
	s := newTestStore(t)

	rows := strings.Join([]string{
		SalesHeader,
		"soon\t93\t1000\tCondo\t1\t12 Jalan Desa 3\tDesa\t500000\t2015\tDesa\t500",
		"2023-03-05\t93\t1000\tCondo\t1\t12 Jalan Desa 3\tDesa\t500000\t2015\tDesa\t500",
	}, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(s.Dir(), SalesFile), []byte(rows), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := s.ReadSales()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Errorf("ReadSales() returned %d sales, want 1 (bad date skipped)", len(got))
	}
}

func TestSaleIsWrittenISO(t *testing.T) {
	s := newTestStore(t)
	if err := s.AppendSale(saleOn(t, "5/3/2023", "Desa")); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(filepath.Join(s.Dir(), SalesFile))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "2023-03-05\t") {
		t.Errorf("sale row = %q, want ISO-8601 date first", last)
	}
}

func TestPurchase(t *testing.T) {
	s := newTestStore(t)

	p1 := condoInDesa(t)
	p2 := mustProperty(t, PropertySpec{
		SqFt: 1500, PropertyType: "Terrace", NoOfFloors: 2,
		Address: "8 Jalan Bukit 1", Scheme: "Bukit Indah",
		Price: M(750000), Year: 2019, PricePerSqft: M(500),
	})
	listings := []Property{p1, p2}
	for _, p := range listings {
		if err := s.AppendProperty(p); err != nil {
			t.Fatal(err)
		}
	}

	on := date.New(2023, 3, 5)
	remaining, sale, err := s.Purchase(listings, 0, on)
	if err != nil {
		t.Fatalf("Purchase() failed: %v", err)
	}

	if sale.When() != on || sale.ProjectName() != p1.Scheme() || !sale.Price().Equal(p1.Price()) {
		t.Errorf("Purchase() sale = %v, want copy of %v on %v", sale, p1, on)
	}
	if len(remaining) != 1 || !remaining[0].Equal(p2) {
		t.Errorf("Purchase() remaining = %v, want only %v", remaining, p2)
	}

	// On-disk listings must match the in-memory remainder.
	onDisk, err := s.ReadProperties()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(onDisk, remaining) {
		t.Errorf("listings file = %v, want %v", onDisk, remaining)
	}

	// And the sale must be in the ledger.
	sales, err := s.ReadSales()
	if err != nil {
		t.Fatal(err)
	}
	if len(sales) != 1 || !sales[0].Equal(sale) {
		t.Errorf("ledger = %v, want only %v", sales, sale)
	}
}

func TestPurchaseOutOfRange(t *testing.T) {
	s := newTestStore(t)
	if _, _, err := s.Purchase(nil, 0, date.Today()); err == nil {
		t.Error("Purchase() on empty listings should have failed")
	}
}

func TestUsersSkipInvalidRole(t *testing.T) {
	s := newTestStore(t)

	rows := strings.Join([]string{
		"bob,secret,bob@example.com,BUYER",
		"eve,secret,eve@example.com,ADMIN", // unknown role
		"amy,secret",                      // wrong field count
		"sam,secret,sam@example.com,seller",
	}, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(s.Dir(), UsersFile), []byte(rows), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := s.ReadUsers()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("ReadUsers() returned %d users, want 2", len(got))
	}
	if got[0].Username() != "bob" || got[0].Role() != Buyer {
		t.Errorf("first user = %v, want bob the buyer", got[0])
	}
	if got[1].Username() != "sam" || got[1].Role() != Seller {
		t.Errorf("second user = %v, want sam the seller (role read case-insensitively)", got[1])
	}
}

func TestUserRoundTripWritesUpperCaseRole(t *testing.T) {
	s := newTestStore(t)
	u, err := NewUser(UserSpec{Username: "bob", Password: "secret", Email: "bob@example.com", Role: Buyer})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AppendUser(u); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(filepath.Join(s.Dir(), UsersFile))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "bob,secret,bob@example.com,BUYER\n" {
		t.Errorf("users file = %q", content)
	}

	users, err := s.ReadUsers()
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 1 || !users[0].Equal(u) {
		t.Errorf("ReadUsers() = %v, want %v", users, u)
	}
}

func TestSignupRejectsDuplicateUsername(t *testing.T) {
	s := newTestStore(t)
	u, _ := NewUser(UserSpec{Username: "bob", Password: "secret", Email: "bob@example.com", Role: Buyer})
	if err := s.Signup(u); err != nil {
		t.Fatalf("first Signup() failed: %v", err)
	}

	again, _ := NewUser(UserSpec{Username: "bob", Password: "other", Email: "bob2@example.com", Role: Seller})
	if err := s.Signup(again); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("second Signup() returned %v, want ErrUsernameTaken", err)
	}
}

func TestStoreAuthenticate(t *testing.T) {
	s := newTestStore(t)
	u, _ := NewUser(UserSpec{Username: "bob", Password: "secret", Email: "bob@example.com", Role: Buyer})
	if err := s.AppendUser(u); err != nil {
		t.Fatal(err)
	}

	got, err := s.Authenticate("bob", "secret")
	if err != nil {
		t.Fatalf("Authenticate() failed: %v", err)
	}
	if got.Role() != Buyer {
		t.Errorf("Authenticate() role = %v, want Buyer", got.Role())
	}

	for _, bad := range [][2]string{{"Bob", "secret"}, {"bob", "Secret"}, {"bob ", "secret"}, {"bob", " secret"}} {
		if _, err := s.Authenticate(bad[0], bad[1]); !errors.Is(err, ErrBadCredentials) {
			t.Errorf("Authenticate(%q, %q) = %v, want ErrBadCredentials", bad[0], bad[1], err)
		}
	}
}
