package homefinder

import (
	"errors"
	"fmt"

	"github.com/nazrin/homefinder/date"
)

// Sale records the purchase of a property. Sales are append-only: once
// written to the ledger they are never updated or deleted.
type Sale struct {
	date         date.Date
	sizeSqM      int
	sqFt         int
	propertyType string
	noOfFloors   int
	address      string
	scheme       string
	price        Money
	year         int
	projectName  string
	pricePerSqft Money
}

// SaleSpec carries the raw field values for a new Sale.
type SaleSpec struct {
	Date         date.Date
	SizeSqM      int
	SqFt         int
	PropertyType string
	NoOfFloors   int
	Address      string
	Scheme       string
	Price        Money
	Year         int
	ProjectName  string
	PricePerSqft Money
}

// NewSale validates the spec and returns the immutable record.
func NewSale(spec SaleSpec) (Sale, error) {
	var errs error
	if spec.Date.IsZero() {
		errs = errors.Join(errs, errors.New("sale date is missing"))
	}
	if spec.SizeSqM < 0 {
		errs = errors.Join(errs, fmt.Errorf("size in sqm must not be negative, got %d", spec.SizeSqM))
	}
	if spec.SqFt < 0 {
		errs = errors.Join(errs, fmt.Errorf("size in sqft must not be negative, got %d", spec.SqFt))
	}
	if spec.NoOfFloors < 0 {
		errs = errors.Join(errs, fmt.Errorf("number of floors must not be negative, got %d", spec.NoOfFloors))
	}
	if spec.ProjectName == "" {
		errs = errors.Join(errs, errors.New("project name is missing"))
	}
	if spec.Price.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("price must not be negative, got %s", spec.Price))
	}
	// Sales persist as tab-separated rows.
	for _, f := range []struct{ name, value string }{
		{"property type", spec.PropertyType},
		{"address", spec.Address},
		{"scheme", spec.Scheme},
		{"project name", spec.ProjectName},
	} {
		if err := validRowField(f.name, f.value, "\t"); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return Sale{}, fmt.Errorf("invalid sale: %w", errs)
	}
	return Sale{
		date:         spec.Date,
		sizeSqM:      spec.SizeSqM,
		sqFt:         spec.SqFt,
		propertyType: spec.PropertyType,
		noOfFloors:   spec.NoOfFloors,
		address:      spec.Address,
		scheme:       spec.Scheme,
		price:        spec.Price,
		year:         spec.Year,
		projectName:  spec.ProjectName,
		pricePerSqft: spec.PricePerSqft,
	}, nil
}

// Purchase builds the sale recorded when a listed property is bought on
// a given day. Every field is copied from the listing; the scheme doubles
// as the project name grouping the sale history.
func Purchase(p Property, on date.Date) Sale {
	return Sale{
		date:         on,
		sizeSqM:      p.sizeSqM,
		sqFt:         p.sqFt,
		propertyType: p.propertyType,
		noOfFloors:   p.noOfFloors,
		address:      p.address,
		scheme:       p.scheme,
		price:        p.price,
		year:         p.year,
		projectName:  p.scheme,
		pricePerSqft: p.pricePerSqft,
	}
}

// When returns the date on which the sale was recorded.
func (s Sale) When() date.Date { return s.date }

func (s Sale) SizeSqM() int         { return s.sizeSqM }
func (s Sale) SqFt() int            { return s.sqFt }
func (s Sale) PropertyType() string { return s.propertyType }
func (s Sale) NoOfFloors() int      { return s.noOfFloors }
func (s Sale) Address() string      { return s.address }
func (s Sale) Scheme() string       { return s.scheme }
func (s Sale) Price() Money         { return s.price }
func (s Sale) Year() int            { return s.year }
func (s Sale) ProjectName() string  { return s.projectName }
func (s Sale) PricePerSqft() Money  { return s.pricePerSqft }

// Equal reports whether two sales match field for field.
func (s Sale) Equal(x Sale) bool {
	return s.date == x.date &&
		s.sizeSqM == x.sizeSqM &&
		s.sqFt == x.sqFt &&
		s.propertyType == x.propertyType &&
		s.noOfFloors == x.noOfFloors &&
		s.address == x.address &&
		s.scheme == x.scheme &&
		s.price.Equal(x.price) &&
		s.year == x.year &&
		s.projectName == x.projectName &&
		s.pricePerSqft.Equal(x.pricePerSqft)
}

func (s Sale) String() string {
	return fmt.Sprintf("%s: %s %s sold for %s", s.date, s.propertyType, s.address, s.price.Display())
}
