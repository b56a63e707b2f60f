package rowify

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnsupportedFormat indicates an unknown output format string.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrInvalidTemplate indicates invalid go-template syntax.
var ErrInvalidTemplate = errors.New("invalid template")

// Format represents an output format for converted records.
type Format string

const (
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Markdown Format = "markdown"
	Table    Format = "table"
	HTML     Format = "html"
	Plain    Format = "plain"
)

const goTemplatePrefix = "go-template="

var formats = []Format{JSON, JSONL, YAML, CSV, TSV, Markdown, Table, HTML, Plain}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each record through a Go
// text/template, executed against the record's field map, one record per
// line.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write serializes records to w in the given format.
func Write(w io.Writer, f Format, records []Record) error {
	switch f {
	case JSON:
		return writeJSON(w, records)
	case JSONL:
		return writeJSONL(w, records)
	case YAML:
		return writeYAML(w, records)
	case CSV:
		return writeCSV(w, records, ',')
	case TSV:
		return writeTSV(w, records)
	case Markdown:
		return writeMarkdown(w, records)
	case Table:
		return WriteTable(w, records, BorderRounded)
	case HTML:
		return writeHTML(w, records)
	case Plain:
		return writePlain(w, records)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, records)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal serializes records in the given format and returns the bytes.
func Marshal(f Format, records []Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
