package rowify

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, records []Record, delim rune) error {
	if len(records) == 0 {
		return nil
	}
	cols := Columns(records)
	cw := csv.NewWriter(w)
	cw.Comma = delim
	if err := cw.Write(cols); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(cells(rec, cols)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
