package investments

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/eladshoshani/Investments/date"
)

// this file contains functions to handle the price series import/export
// format: a CSV file with at least a Date and a Close column, in any order,
// as exported by the usual market data providers.

// ImportPrices imports a price series from 'r' in CSV format.
//
// The header must contain a "Date" and a "Close" column (case-insensitive);
// extra columns (Open, High, Low, Volume...) are ignored. Rows may appear in
// any order, the series is sorted by date. A row with an unparseable date or
// close is a load failure.
func ImportPrices(r io.Reader) (*PriceSeries, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}

	dateCol, closeCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			dateCol = i
		case "close":
			closeCol = i
		}
	}
	if dateCol < 0 || closeCol < 0 {
		return nil, fmt.Errorf("CSV header %v: want at least a Date and a Close column", header)
	}

	series := &PriceSeries{}
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read CSV line %d: %w", line, err)
		}
		day, err := date.Parse(record[dateCol])
		if err != nil {
			return nil, fmt.Errorf("CSV line %d: %w", line, err)
		}
		close, err := strconv.ParseFloat(strings.TrimSpace(record[closeCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("CSV line %d: invalid close %q: %w", line, record[closeCol], err)
		}
		series.Append(day, close)
	}
	if series.Len() == 0 {
		return nil, fmt.Errorf("CSV contains no price rows")
	}
	return series, nil
}

// ExportPrices exports the series to 'w' in the same CSV format ImportPrices
// reads.
func ExportPrices(w io.Writer, s *PriceSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Close"}); err != nil {
		return err
	}
	for day, close := range s.Values() {
		record := []string{day.String(), strconv.FormatFloat(close, 'f', -1, 64)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
