package rowify

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	cols := Columns(records)
	if _, err := fmt.Fprintln(w, strings.Join(cols, "\t")); err != nil {
		return err
	}
	for _, rec := range records {
		if _, err := fmt.Fprintln(w, strings.Join(cells(rec, cols), "\t")); err != nil {
			return err
		}
	}
	return nil
}
