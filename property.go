package homefinder

import (
	"errors"
	"fmt"
)

// Property is a single listed property. It is immutable after
// construction; a listing is edited by removing it and adding a new one.
//
// A property has no identity of its own: its position in the listings
// file is its identity.
type Property struct {
	sizeSqM      int
	sqFt         int
	propertyType string
	noOfFloors   int
	address      string
	scheme       string
	price        Money
	year         int
	pricePerSqft Money
}

// PropertySpec carries the raw field values for a new Property.
type PropertySpec struct {
	SizeSqM      int
	SqFt         int
	PropertyType string
	NoOfFloors   int
	Address      string
	Scheme       string
	Price        Money
	Year         int
	PricePerSqft Money
}

// NewProperty validates the spec and returns the immutable record, or an
// error joining every validation failure.
func NewProperty(spec PropertySpec) (Property, error) {
	var errs error
	if spec.SizeSqM < 0 {
		errs = errors.Join(errs, fmt.Errorf("size in sqm must not be negative, got %d", spec.SizeSqM))
	}
	if spec.SqFt < 0 {
		errs = errors.Join(errs, fmt.Errorf("size in sqft must not be negative, got %d", spec.SqFt))
	}
	if spec.NoOfFloors < 0 {
		errs = errors.Join(errs, fmt.Errorf("number of floors must not be negative, got %d", spec.NoOfFloors))
	}
	if spec.PropertyType == "" {
		errs = errors.Join(errs, errors.New("property type is missing"))
	}
	if spec.Address == "" {
		errs = errors.Join(errs, errors.New("address is missing"))
	}
	if spec.Scheme == "" {
		errs = errors.Join(errs, errors.New("scheme is missing"))
	}
	if spec.Price.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("price must not be negative, got %s", spec.Price))
	}
	if spec.PricePerSqft.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("price per sqft must not be negative, got %s", spec.PricePerSqft))
	}
	// Listings persist as comma-separated rows, and a purchase copies
	// them into the tab-separated ledger, so both delimiters are out.
	for _, f := range []struct{ name, value string }{
		{"property type", spec.PropertyType},
		{"address", spec.Address},
		{"scheme", spec.Scheme},
	} {
		if err := validRowField(f.name, f.value, ","); err != nil {
			errs = errors.Join(errs, err)
		} else if err := validRowField(f.name, f.value, "\t"); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return Property{}, fmt.Errorf("invalid property: %w", errs)
	}
	return Property{
		sizeSqM:      spec.SizeSqM,
		sqFt:         spec.SqFt,
		propertyType: spec.PropertyType,
		noOfFloors:   spec.NoOfFloors,
		address:      spec.Address,
		scheme:       spec.Scheme,
		price:        spec.Price,
		year:         spec.Year,
		pricePerSqft: spec.PricePerSqft,
	}, nil
}

func (p Property) SizeSqM() int         { return p.sizeSqM }
func (p Property) SqFt() int            { return p.sqFt }
func (p Property) PropertyType() string { return p.propertyType }
func (p Property) NoOfFloors() int      { return p.noOfFloors }
func (p Property) Address() string      { return p.address }
func (p Property) Scheme() string       { return p.scheme }
func (p Property) Price() Money         { return p.price }
func (p Property) Year() int            { return p.year }
func (p Property) PricePerSqft() Money  { return p.pricePerSqft }

// Equal reports whether two properties match field for field.
func (p Property) Equal(q Property) bool {
	return p.sizeSqM == q.sizeSqM &&
		p.sqFt == q.sqFt &&
		p.propertyType == q.propertyType &&
		p.noOfFloors == q.noOfFloors &&
		p.address == q.address &&
		p.scheme == q.scheme &&
		p.price.Equal(q.price) &&
		p.year == q.year &&
		p.pricePerSqft.Equal(q.pricePerSqft)
}

func (p Property) String() string {
	return fmt.Sprintf("%s %s, %s (%d sqft, %d floors) for %s", p.propertyType, p.address, p.scheme, p.sqFt, p.noOfFloors, p.price.Display())
}
