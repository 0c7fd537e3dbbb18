package section

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadSectionsCSV reads grid sections from a CSV file whose header names the
// columns position, caption and image (in any order, extra columns ignored).
func LoadSectionsCSV(path string) ([]Section, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	out, err := ReadSectionsCSV(fp)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return out, nil
}

// ReadSectionsCSV is LoadSectionsCSV over an arbitrary reader.
func ReadSectionsCSV(r io.Reader) ([]Section, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv has no header")
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, want := range []string{"position", "caption", "image"} {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("csv header is missing column %q", want)
		}
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []Section{}
	for i, row := range rows[1:] {
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		pos, err := ParsePosition(get(row, "position"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		out = append(out, Section{
			Position: pos,
			Caption:  get(row, "caption"),
			Image:    get(row, "image"),
		})
	}
	return out, nil
}
