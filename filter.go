package homefinder

import (
	"slices"
	"strings"

	"github.com/nazrin/homefinder/date"
)

// SearchCriteria narrows a listing search. Zero-valued bounds are
// unbounded: a zero MaxSqFt or MaxPrice means no upper limit, and empty
// strings match any type or project. String matches are exact but
// case-insensitive.
type SearchCriteria struct {
	MinSqFt      int
	MaxSqFt      int
	MinPrice     Money
	MaxPrice     Money
	PropertyType string
	ProjectName  string
}

func (c SearchCriteria) matches(p Property) bool {
	if p.SqFt() < c.MinSqFt {
		return false
	}
	if c.MaxSqFt > 0 && p.SqFt() > c.MaxSqFt {
		return false
	}
	if p.Price().LessThan(c.MinPrice) {
		return false
	}
	if !c.MaxPrice.IsZero() && p.Price().GreaterThan(c.MaxPrice) {
		return false
	}
	if c.PropertyType != "" && !strings.EqualFold(c.PropertyType, p.PropertyType()) {
		return false
	}
	if c.ProjectName != "" && !strings.EqualFold(c.ProjectName, p.Scheme()) {
		return false
	}
	return true
}

// FilterProperties returns the listings matching the criteria, keeping
// the input order.
func FilterProperties(properties []Property, c SearchCriteria) []Property {
	var matched []Property
	for _, p := range properties {
		if c.matches(p) {
			matched = append(matched, p)
		}
	}
	return matched
}

// FilterSalesByProject returns the sales whose project name equals the
// given one, ignoring case, keeping the input order.
func FilterSalesByProject(sales []Sale, projectName string) []Sale {
	var matched []Sale
	for _, s := range sales {
		if strings.EqualFold(s.ProjectName(), projectName) {
			matched = append(matched, s)
		}
	}
	return matched
}

// LastN returns the final n sales of the slice, or the whole slice when
// it is shorter. With the slice sorted date-ascending these are the n
// most recent sales, oldest first.
func LastN(sales []Sale, n int) []Sale {
	if n <= 0 {
		return nil
	}
	if len(sales) <= n {
		return sales
	}
	return sales[len(sales)-n:]
}

// SortSalesByDate sorts the sales date-ascending in place. The sort is
// stable so sales of the same day keep their ledger order; zero dates
// sort last.
func SortSalesByDate(sales []Sale) {
	slices.SortStableFunc(sales, func(a, b Sale) int {
		return date.Compare(a.When(), b.When())
	})
}

// ProjectNames returns the distinct scheme names across the listings,
// sorted. Names differing only in case are kept distinct.
func ProjectNames(properties []Property) []string {
	seen := make(map[string]bool)
	var names []string
	for _, p := range properties {
		if !seen[p.Scheme()] {
			seen[p.Scheme()] = true
			names = append(names, p.Scheme())
		}
	}
	slices.Sort(names)
	return names
}
