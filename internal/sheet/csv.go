package sheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// row maps column A of a headerless export.
type row struct {
	Address string `csv:"address"`
}

// firstFieldReader trims every record to its first field so rows of any
// width decode into row.
type firstFieldReader struct {
	r *csv.Reader
}

func (f firstFieldReader) Read() ([]string, error) {
	rec, err := f.r.Read()
	if err != nil {
		return nil, err
	}
	return rec[:1], nil
}

func (f firstFieldReader) ReadAll() ([][]string, error) {
	var out [][]string
	for {
		rec, err := f.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
}

func firstColumn(data []byte) ([]string, error) {
	// blank lines are skipped by the csv reader, so this is an empty sheet
	if len(bytes.TrimSpace(data)) == 0 {
		return []string{}, nil
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows []*row
	if err := gocsv.UnmarshalCSVWithoutHeaders(firstFieldReader{r: r}, &rows); err != nil {
		return nil, fmt.Errorf("parse sheet csv: %w", err)
	}

	values := make([]string, 0, len(rows))
	for _, rw := range rows {
		values = append(values, rw.Address)
	}
	return values, nil
}
