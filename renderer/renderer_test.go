package renderer

import (
	"strings"
	"testing"

	"github.com/nazrin/homefinder"
	"github.com/nazrin/homefinder/date"
)

func listing(t *testing.T) homefinder.Property {
	t.Helper()
	p, err := homefinder.NewProperty(homefinder.PropertySpec{
		SizeSqM:      93,
		SqFt:         1000,
		PropertyType: "Condo",
		NoOfFloors:   1,
		Address:      "12 Jalan Desa 3",
		Scheme:       "Desa",
		Price:        homefinder.M(500000),
		Year:         2015,
		PricePerSqft: homefinder.M(500),
	})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestProperties(t *testing.T) {
	got := Properties("Property Listings", []homefinder.Property{listing(t)})

	for _, want := range []string{"# Property Listings", "| 1 |", "Condo", "12 Jalan Desa 3", "RM500,000.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("Properties() output missing %q:\n%s", want, got)
		}
	}
}

func TestPropertiesEmpty(t *testing.T) {
	got := Properties("Property Listings", nil)
	if !strings.Contains(got, "No properties found.") {
		t.Errorf("Properties(nil) = %q, want the empty notice", got)
	}
}

func TestSales(t *testing.T) {
	s, err := homefinder.NewSale(homefinder.SaleSpec{
		Date:         date.New(2023, 3, 5),
		SqFt:         1000,
		PropertyType: "Condo",
		Address:      "12 Jalan Desa 3",
		Scheme:       "Desa",
		Price:        homefinder.M(500000),
		Year:         2015,
		ProjectName:  "Desa",
		PricePerSqft: homefinder.M(500),
	})
	if err != nil {
		t.Fatal(err)
	}

	got := Sales("Desa", []homefinder.Sale{s})
	for _, want := range []string{"# Sales for Desa", "2023-03-05", "RM500,000.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("Sales() output missing %q:\n%s", want, got)
		}
	}

	if got := Sales("Desa", nil); !strings.Contains(got, "No sales recorded") {
		t.Errorf("Sales(nil) = %q, want the empty notice", got)
	}
}

func TestWelcome(t *testing.T) {
	seller, err := homefinder.NewUser(homefinder.UserSpec{Username: "sam", Password: "x", Email: "sam@example.com", Role: homefinder.Seller})
	if err != nil {
		t.Fatal(err)
	}
	if got := Welcome(seller); !strings.Contains(got, "hf add") {
		t.Errorf("Welcome(seller) = %q, want a pointer to hf add", got)
	}

	buyer, err := homefinder.NewUser(homefinder.UserSpec{Username: "bob", Password: "x", Email: "bob@example.com", Role: homefinder.Buyer})
	if err != nil {
		t.Fatal(err)
	}
	if got := Welcome(buyer); !strings.Contains(got, "hf buy") {
		t.Errorf("Welcome(buyer) = %q, want a pointer to hf buy", got)
	}
}
