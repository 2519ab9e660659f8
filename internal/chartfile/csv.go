package chartfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nonnontrivial/mutpoint"
)

// ReadCSV reads points from CSV with a header row naming the x and y
// columns. Other columns are ignored. Empty cells make the point
// undefined.
func ReadCSV(r io.Reader) (mutpoint.Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ParseError{Line: 1, Field: "header", Err: errors.New("empty file")}
	}
	if err != nil {
		return nil, fmt.Errorf("chartfile: read csv: %w", err)
	}

	xi, yi := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "x":
			xi = i
		case "y":
			yi = i
		}
	}
	if xi < 0 || yi < 0 {
		return nil, &ParseError{Line: 1, Field: "header", Err: fmt.Errorf("want x and y columns, got %q", header)}
	}

	var points mutpoint.Series
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("chartfile: read csv: %w", err)
		}
		line, _ := cr.FieldPos(0)

		var x, y float64
		for _, col := range []struct {
			index int
			name  string
			dst   *float64
		}{
			{xi, "x", &x},
			{yi, "y", &y},
		} {
			var cell string
			if col.index < len(record) {
				cell = record[col.index]
			}
			v, err := parseValue(cell)
			if err != nil {
				return nil, &ParseError{Line: line, Field: col.name, Err: err}
			}
			*col.dst = v
		}
		points = append(points, mutpoint.Pt(x, y))
	}
	return points, nil
}
