package rowify

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	wsRunRE    = regexp.MustCompile(`\s+`)
	keyCharRE  = regexp.MustCompile(`[^a-z0-9_]`)
	digitRunRE = regexp.MustCompile(`\d+`)
	numberRE   = regexp.MustCompile(`[-+]?\d+(?:\.\d+)?`)
	quoteRE    = regexp.MustCompile("['\"‘’“”]")
	nonAlnumRE = regexp.MustCompile(`[^a-z0-9]+`)
)

// normalizeKey converts a header cell into a record key: lowercased,
// whitespace collapsed to underscores, everything outside [a-z0-9_] removed.
// Idempotent, so caller-supplied keys that are already normalized pass
// through untouched.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = wsRunRE.ReplaceAllString(s, "_")
	return keyCharRE.ReplaceAllString(s, "")
}

// slugify builds an identifier fragment: lowercased, quote characters
// stripped (so "O'Brien" becomes "obrien", not "o-brien"), runs of
// non-alphanumerics collapsed to single hyphens, outer hyphens trimmed.
func slugify(s string) string {
	s = strings.ToLower(s)
	s = quoteRE.ReplaceAllString(s, "")
	s = nonAlnumRE.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// coerceRank extracts the first run of digits (a leading "#" is common in
// ranking lists) as a number, or nil when the cell holds no digits.
func coerceRank(s string) any {
	m := digitRunRE.FindString(s)
	if m == "" {
		return nil
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	return n
}

// coerceRating extracts the first numeric token, optionally signed and with
// a decimal point, as a number, or nil when the cell holds none.
func coerceRating(s string) any {
	m := numberRE.FindString(s)
	if m == "" {
		return nil
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	return n
}

// isJunk reports whether a raw row is a parsing artifact: a separator row of
// dashes, or a single stray token shorter than two characters. Junk rows are
// dropped before identifier synthesis so they never consume a sequence
// number.
func isJunk(row []string) bool {
	joined := strings.ToLower(strings.Join(row, " "))
	if strings.Contains(joined, "---") {
		return true
	}
	return len(row) == 1 && len(row[0]) < 2
}

// normalizeRow converts one raw row into a Record. produced is the count of
// records already emitted, used for the 1-based fallback identifier sequence.
func normalizeRow(row []string, header []string, produced int, opts Options) Record {
	var rec Record
	if len(header) > 0 {
		for i, h := range header {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			rec.set(normalizeKey(h), val)
		}
	} else {
		for i, cell := range row {
			rec.set(fmt.Sprintf("col%d", i+1), cell)
		}
	}

	if v, ok := rec.Get("rank"); ok {
		rec.set("rank", coerceRank(rawString(v)))
	}
	if v, ok := rec.Get("rating"); ok {
		rec.set("rating", coerceRating(rawString(v)))
	}

	if !opts.NoID {
		rec.set("id", makeID(rec, produced))
	}

	// Metadata wins over row data; sorted keys keep output deterministic.
	metaKeys := make([]string, 0, len(opts.Meta))
	for k := range opts.Meta {
		metaKeys = append(metaKeys, k)
	}
	sort.Strings(metaKeys)
	for _, k := range metaKeys {
		rec.setLast(k, opts.Meta[k])
	}

	return rec
}

// makeID synthesizes the record identifier by slugifying a base value joined
// with the rank, or with the 1-based record sequence when no rank is
// available. Uniqueness is not enforced.
func makeID(rec Record, produced int) string {
	base := "row"
	for _, key := range []string{"player", "name", "full_name", "col2", "col1"} {
		if v, ok := rec.Get(key); ok {
			if s := rawString(v); s != "" {
				base = s
				break
			}
		}
	}
	suffix := strconv.Itoa(produced + 1)
	if v, ok := rec.Get("rank"); ok {
		if n, isNum := v.(float64); isNum {
			suffix = strconv.FormatFloat(n, 'f', -1, 64)
		}
	}
	return slugify(base + "-" + suffix)
}

func rawString(v any) string {
	s, _ := v.(string)
	return s
}
