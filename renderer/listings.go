package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"
	"github.com/nazrin/homefinder"
)

// Properties renders the listings as a markdown table under the given
// title. Rows are numbered 1-based; that number is what `hf buy -i`
// expects.
func Properties(title string, properties []homefinder.Property) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(properties) == 0 {
		doc.PlainText("No properties found.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"#", "Type", "Address", "Scheme", "SqFt", "SqM", "Floors", "Year", "Price", "Price/SqFt"},
		Rows:   [][]string{},
	}
	for i, p := range properties {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i + 1),
			p.PropertyType(),
			p.Address(),
			p.Scheme(),
			strconv.Itoa(p.SqFt()),
			strconv.Itoa(p.SizeSqM()),
			strconv.Itoa(p.NoOfFloors()),
			strconv.Itoa(p.Year()),
			p.Price().Display(),
			p.PricePerSqft().Display(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// Projects renders the distinct project names as a markdown list.
func Projects(names []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Projects")
	if len(names) == 0 {
		doc.PlainText("No projects found.")
		return doc.String()
	}
	doc.BulletList(names...)
	return doc.String()
}

// Sales renders a project's sale history as a markdown table, oldest
// first.
func Sales(project string, sales []homefinder.Sale) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Sales for %s", project))
	if len(sales) == 0 {
		doc.PlainText("No sales recorded for this project.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Type", "Address", "SqFt", "Price", "Price/SqFt"},
		Rows:   [][]string{},
	}
	for _, s := range sales {
		table.Rows = append(table.Rows, []string{
			s.When().String(),
			s.PropertyType(),
			s.Address(),
			strconv.Itoa(s.SqFt()),
			s.Price().Display(),
			s.PricePerSqft().Display(),
		})
	}
	doc.Table(table)

	return doc.String()
}
