package rowify

import (
	"fmt"
	"io"
	"strings"
)

// writePlain renders each record as one "key: value, key: value" line.
// Empty and nil fields are skipped.
func writePlain(w io.Writer, records []Record) error {
	for _, rec := range records {
		var fields []string
		for _, k := range rec.Keys() {
			v, _ := rec.Get(k)
			s := cellString(v)
			if s == "" {
				continue
			}
			fields = append(fields, fmt.Sprintf("%s: %s", k, s))
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, ", ")); err != nil {
			return err
		}
	}
	return nil
}
