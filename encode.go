package homefinder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nazrin/homefinder/date"
)

// This file holds the row codecs for the three data files. Rows are
// positional: fields are joined by the file's delimiter in a fixed
// order, and parsed back by position. The formats are fixed by the files
// already in the field; see the headers below.

// PropertiesHeader is the header row of the property listings file.
const PropertiesHeader = "SizeSqM,SqFt,PropertyType,NoOfFloors,Address,Scheme,Price,Year,PricePerSqft"

// SalesHeader is the header row of the sale ledger file.
const SalesHeader = "Date\tSizeSqM\tSizeSqFt\tPropertyType\tNoOfFloors\tAddress\tScheme\tPrice\tYear\tProjectName\tPricePerSqft"

const (
	propertyFields = 9
	saleFields     = 11
	userFields     = 4
)

// validRowField rejects values that would corrupt the positional row
// format: a delimiter inside a field shifts every later field, and a
// line break splits the row. Such a row would be skipped as malformed
// on the next read.
func validRowField(name, value, delimiter string) error {
	if strings.Contains(value, delimiter) || strings.ContainsAny(value, "\n\r") {
		return fmt.Errorf("%s %q must not contain %q or line breaks", name, value, delimiter)
	}
	return nil
}

func parseInt(field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, value)
	}
	return n, nil
}

// parsePropertyRow decodes one comma-separated row of the listings file.
func parsePropertyRow(line string) (Property, error) {
	fields := strings.Split(line, ",")
	if len(fields) < propertyFields {
		return Property{}, fmt.Errorf("want %d fields, got %d", propertyFields, len(fields))
	}

	sizeSqM, err := parseInt("size in sqm", fields[0])
	if err != nil {
		return Property{}, err
	}
	sqFt, err := parseInt("size in sqft", fields[1])
	if err != nil {
		return Property{}, err
	}
	noOfFloors, err := parseInt("number of floors", fields[3])
	if err != nil {
		return Property{}, err
	}
	price, err := ParseMoney(strings.TrimSpace(fields[6]))
	if err != nil {
		return Property{}, err
	}
	year, err := parseInt("year", fields[7])
	if err != nil {
		return Property{}, err
	}
	pricePerSqft, err := ParseMoney(strings.TrimSpace(fields[8]))
	if err != nil {
		return Property{}, err
	}

	return NewProperty(PropertySpec{
		SizeSqM:      sizeSqM,
		SqFt:         sqFt,
		PropertyType: strings.TrimSpace(fields[2]),
		NoOfFloors:   noOfFloors,
		Address:      strings.TrimSpace(fields[4]),
		Scheme:       strings.TrimSpace(fields[5]),
		Price:        price,
		Year:         year,
		PricePerSqft: pricePerSqft,
	})
}

// encodePropertyRow serializes a property in the fixed field order.
func encodePropertyRow(p Property) string {
	return strings.Join([]string{
		strconv.Itoa(p.sizeSqM),
		strconv.Itoa(p.sqFt),
		p.propertyType,
		strconv.Itoa(p.noOfFloors),
		p.address,
		p.scheme,
		p.price.String(),
		strconv.Itoa(p.year),
		p.pricePerSqft.String(),
	}, ",")
}

// parseSaleRow decodes one tab-separated row of the sale ledger. The
// date is accepted in any of the date package's read formats.
func parseSaleRow(line string) (Sale, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < saleFields {
		return Sale{}, fmt.Errorf("want %d fields, got %d", saleFields, len(fields))
	}

	on, err := date.Parse(strings.TrimSpace(fields[0]))
	if err != nil {
		return Sale{}, err
	}
	sizeSqM, err := parseInt("size in sqm", fields[1])
	if err != nil {
		return Sale{}, err
	}
	sqFt, err := parseInt("size in sqft", fields[2])
	if err != nil {
		return Sale{}, err
	}
	noOfFloors, err := parseInt("number of floors", fields[4])
	if err != nil {
		return Sale{}, err
	}
	price, err := ParseMoney(strings.TrimSpace(fields[7]))
	if err != nil {
		return Sale{}, err
	}
	year, err := parseInt("year", fields[8])
	if err != nil {
		return Sale{}, err
	}
	pricePerSqft, err := ParseMoney(strings.TrimSpace(fields[10]))
	if err != nil {
		return Sale{}, err
	}

	return NewSale(SaleSpec{
		Date:         on,
		SizeSqM:      sizeSqM,
		SqFt:         sqFt,
		PropertyType: strings.TrimSpace(fields[3]),
		NoOfFloors:   noOfFloors,
		Address:      strings.TrimSpace(fields[5]),
		Scheme:       strings.TrimSpace(fields[6]),
		Price:        price,
		Year:         year,
		ProjectName:  strings.TrimSpace(fields[9]),
		PricePerSqft: pricePerSqft,
	})
}

// encodeSaleRow serializes a sale in the fixed field order. The date is
// always written in ISO-8601.
func encodeSaleRow(s Sale) string {
	return strings.Join([]string{
		s.date.String(),
		strconv.Itoa(s.sizeSqM),
		strconv.Itoa(s.sqFt),
		s.propertyType,
		strconv.Itoa(s.noOfFloors),
		s.address,
		s.scheme,
		s.price.String(),
		strconv.Itoa(s.year),
		s.projectName,
		s.pricePerSqft.String(),
	}, "\t")
}

// parseUserRow decodes one comma-separated row of the users file. The
// role is matched case-insensitively.
func parseUserRow(line string) (User, error) {
	fields := strings.Split(line, ",")
	if len(fields) != userFields {
		return User{}, fmt.Errorf("want %d fields, got %d", userFields, len(fields))
	}
	role, err := ParseRole(fields[3])
	if err != nil {
		return User{}, err
	}
	return NewUser(UserSpec{
		Username: strings.TrimSpace(fields[0]),
		Password: strings.TrimSpace(fields[1]),
		Email:    strings.TrimSpace(fields[2]),
		Role:     role,
	})
}

// encodeUserRow serializes a user; the role is written upper-case.
func encodeUserRow(u User) string {
	return strings.Join([]string{u.username, u.password, u.email, u.role.String()}, ",")
}
