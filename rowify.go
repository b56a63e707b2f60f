package rowify

import (
	"math"
	"sort"
)

// Options configures a conversion.
type Options struct {
	// Columns overrides any detected header. Positions beyond the explicit
	// column count are dropped from every row.
	Columns []string
	// NoID disables synthesis of the "id" field. The zero value keeps ids on.
	NoID bool
	// Meta is merged into every record after all row fields, overwriting any
	// same-named field.
	Meta map[string]string
}

// Convert parses loosely structured tabular text into an ordered slice of
// Records. The shape of the input is detected, a header is resolved
// (explicit columns, then a detected header, then positional col1, col2, …
// names), junk rows are dropped, and each remaining row is normalized. When
// the first record carries a numeric rank the result is sorted by rank
// ascending, rank-less records last.
//
// Convert never fails: every heuristic has a fallback, and malformed input
// degrades to best-effort records. It is pure and safe for concurrent use.
func Convert(text string, opts Options) []Record {
	lines := splitLines(text)
	shape := detectShape(lines)
	detected, rows := extract(lines, shape)
	header := resolveHeader(opts.Columns, detected)

	var records []Record
	for _, row := range rows {
		if isJunk(row) {
			continue
		}
		records = append(records, normalizeRow(row, header, len(records), opts))
	}
	sortByRank(records)
	return records
}

func resolveHeader(explicit, detected []string) []string {
	if len(explicit) > 0 {
		return explicit
	}
	return detected
}

// sortByRank sorts ascending by rank when the first record has one. Records
// without a usable rank sort last. Only the first record is inspected to
// decide whether to sort at all, so a leading rank-less record leaves the
// whole sequence in extraction order.
func sortByRank(records []Record) {
	if len(records) == 0 {
		return
	}
	if v, ok := records[0].Get("rank"); !ok || v == nil {
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		return rankOf(records[i]) < rankOf(records[j])
	})
}

func rankOf(rec Record) float64 {
	if v, ok := rec.Get("rank"); ok {
		if n, isNum := v.(float64); isNum {
			return n
		}
	}
	return math.Inf(1)
}
