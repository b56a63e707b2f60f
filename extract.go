package rowify

import (
	"regexp"
	"strings"
)

// headerScanLimit caps how far into the input the header guess looks.
const headerScanLimit = 25

// headerKeywords are column names that commonly appear in ranking lists.
// A line containing three or more of them is assumed to be a header.
var headerKeywords = []string{"rank", "player", "name", "city", "school", "type", "rating"}

var spaceRunRE = regexp.MustCompile(` {2,}`)

// extract pulls an optional header and the raw rows out of the line list
// using the strategy for the detected shape.
func extract(lines []string, shape Shape) (header []string, rows [][]string) {
	switch shape {
	case ShapeMarkdown:
		return extractMarkdown(lines)
	case ShapeTab:
		return extractDelimited(lines, "\t")
	case ShapeComma:
		return extractDelimited(lines, ",")
	default:
		return extractSpaced(lines)
	}
}

// extractMarkdown parses pipe-prefixed rows. The first pipe row is the
// header and the second (the dash separator) is skipped unconditionally.
func extractMarkdown(lines []string) ([]string, [][]string) {
	var pipeRows []string
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "|") {
			pipeRows = append(pipeRows, line)
		}
	}
	if len(pipeRows) < 2 {
		return nil, nil
	}
	header := splitPipes(pipeRows[0])
	var rows [][]string
	for _, line := range pipeRows[2:] {
		rows = append(rows, splitPipes(line))
	}
	return header, rows
}

func splitPipes(line string) []string {
	var cells []string
	for _, cell := range strings.Split(line, "|") {
		cell = strings.TrimSpace(cell)
		if cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}

func extractDelimited(lines []string, delim string) ([]string, [][]string) {
	split := func(line string) []string {
		cells := strings.Split(line, delim)
		for i, cell := range cells {
			cells[i] = strings.TrimSpace(cell)
		}
		return cells
	}
	return splitAroundHeader(lines, split)
}

// extractSpaced splits each line on runs of two or more spaces, so a
// single-space value like a two-word city name stays in one cell.
func extractSpaced(lines []string) ([]string, [][]string) {
	split := func(line string) []string {
		return spaceRunRE.Split(strings.TrimSpace(line), -1)
	}
	return splitAroundHeader(lines, split)
}

// splitAroundHeader applies the shared header guess: if a header line is
// found, it becomes the header and only lines after it become rows;
// otherwise every line is a row and the caller falls back to positional
// column names.
func splitAroundHeader(lines []string, split func(string) []string) ([]string, [][]string) {
	idx := guessHeader(lines)
	var header []string
	start := 0
	if idx >= 0 {
		header = split(lines[idx])
		start = idx + 1
	}
	var rows [][]string
	for _, line := range lines[start:] {
		rows = append(rows, split(line))
	}
	return header, rows
}

// guessHeader returns the index of the first line, within the scan limit,
// whose lowercased text contains at least three of the header keywords.
// Returns -1 when no line qualifies. Purely heuristic: unlabeled numeric
// data never matches, which is the desired outcome.
func guessHeader(lines []string) int {
	for i, line := range lines {
		if i >= headerScanLimit {
			break
		}
		lower := strings.ToLower(line)
		hits := 0
		for _, kw := range headerKeywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits >= 3 {
			return i
		}
	}
	return -1
}
