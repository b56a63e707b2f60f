// Package rowify converts loosely structured tabular text into normalized,
// serializable records.
//
// The input is the kind of "almost-structured" text people copy out of
// spreadsheets, chat messages, and web pages: markdown tables, tab- or
// comma-separated fragments, or columns aligned with runs of spaces. The
// central entry point is [Convert], which detects the encoding, extracts a
// header and rows, and normalizes each row into a [Record]:
//
//	records := rowify.Convert(text, rowify.Options{
//		Meta: map[string]string{"source": "newsletter"},
//	})
//	rowify.Write(os.Stdout, rowify.JSON, records)
//
// # Detection
//
// [DetectShape] classifies input as one of four [Shape] values by a fixed
// priority: a line starting with "|" means a markdown table, a tab anywhere
// means tab-separated, a comma (with no tab anywhere) means comma-separated,
// and anything else is treated as space-aligned columns. Space-aligned
// splitting uses runs of two or more spaces, so multi-word cells such as
// city names survive.
//
// # Headers
//
// Explicit [Options.Columns] override everything. Otherwise a header line is
// guessed: the first line containing at least three common ranking-list
// column names (rank, player, name, city, school, type, rating). With no
// header, fields are named col1, col2, … positionally.
//
// # Normalization
//
// Header cells become snake_case keys. A "rank" field is coerced to its
// first digit run, a "rating" field to its first numeric token; either
// becomes nil when no number is present. Unless [Options.NoID] is set, each
// record gets a slugified "id" built from the best available name field and
// the rank (or the record's 1-based position). [Options.Meta] is merged into
// every record last, overwriting same-named fields. Separator artifacts and
// stray tokens are filtered out before normalization. When the first record
// has a numeric rank, the result is sorted by rank ascending.
//
// Convert never fails: every heuristic has a fallback, and malformed input
// degrades to best-effort records rather than an error.
//
// # Output
//
// [Write] and [Marshal] serialize records in any [Format]: JSON, JSONL,
// YAML, CSV, TSV, Markdown, Table, HTML, Plain, or a parameterized
// [GoTemplate]. JSON and YAML preserve the record's field order. Columnar
// formats derive their header from [Columns], the first-seen union of keys.
// Use [ParseFormat] to convert a CLI flag string into a [Format].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrInvalidTemplate] — invalid go-template syntax
//   - [ErrUnknownBorder] — unknown table border style name
package rowify
