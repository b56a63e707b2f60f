package rowify

import "strings"

// Shape classifies the tabular encoding of a blob of text.
type Shape string

const (
	// ShapeMarkdown is a pipe-delimited markdown table.
	ShapeMarkdown Shape = "markdown"
	// ShapeTab is tab-separated values.
	ShapeTab Shape = "tab"
	// ShapeComma is comma-separated values.
	ShapeComma Shape = "comma"
	// ShapeSpaced is columns aligned with runs of spaces. The fallback shape.
	ShapeSpaced Shape = "spaced"
)

// String returns the shape name.
func (s Shape) String() string { return string(s) }

// DetectShape classifies raw text into one of the four shapes. Detection is a
// priority chain over the non-blank lines: a markdown pipe row wins over tabs,
// tabs win over commas, and anything else falls back to space-aligned.
// A single tab anywhere disqualifies the comma shape, since tab-separated
// exports routinely carry commas inside cells.
func DetectShape(text string) Shape {
	return detectShape(splitLines(text))
}

func detectShape(lines []string) Shape {
	hasTab := false
	hasComma := false
	for _, line := range lines {
		if strings.Contains(line, "|") && strings.HasPrefix(strings.TrimSpace(line), "|") {
			return ShapeMarkdown
		}
		if strings.Contains(line, "\t") {
			hasTab = true
		}
		if strings.Contains(line, ",") {
			hasComma = true
		}
	}
	if hasTab {
		return ShapeTab
	}
	if hasComma {
		return ShapeComma
	}
	return ShapeSpaced
}

// splitLines breaks text into lines with trailing whitespace trimmed and
// blank lines removed.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
