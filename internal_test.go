package rowify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectShapePriority(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		lines []string
		want  Shape
	}{
		{"markdown", []string{"| a | b |", "| - | - |"}, ShapeMarkdown},
		{"markdown wins over tabs", []string{"a\tb", "| a | b |"}, ShapeMarkdown},
		{"pipe not at start is not markdown", []string{"a | b"}, ShapeSpaced},
		{"tab", []string{"a\tb"}, ShapeTab},
		{"tab wins over comma", []string{"a,b", "c\td"}, ShapeTab},
		{"comma", []string{"a,b"}, ShapeComma},
		{"comma disqualified by tab elsewhere", []string{"a,b", "c\td", "e,f"}, ShapeTab},
		{"spaced fallback", []string{"a  b"}, ShapeSpaced},
		{"empty", nil, ShapeSpaced},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, detectShape(tt.lines))
		})
	}
}

func TestSplitLines(t *testing.T) {
	t.Parallel()
	lines := splitLines("a  \n\n  \nb\t\r\nc")
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}

func TestGuessHeader(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, guessHeader([]string{"Rank  Player  City", "1  A  B"}))
	assert.Equal(t, 1, guessHeader([]string{"2024 results", "rank,name,school", "1,A,B"}))
	// Two keyword hits are not enough.
	assert.Equal(t, -1, guessHeader([]string{"rank,name", "1,A"}))
	// Each keyword counts once no matter how often it appears.
	assert.Equal(t, -1, guessHeader([]string{"rank rank rank"}))
}

func TestGuessHeaderScanLimit(t *testing.T) {
	t.Parallel()
	lines := make([]string, 0, 30)
	for i := 0; i < 25; i++ {
		lines = append(lines, "1,2,3")
	}
	lines = append(lines, "rank,name,city")
	assert.Equal(t, -1, guessHeader(lines))
}

func TestExtractMarkdown(t *testing.T) {
	t.Parallel()
	lines := []string{
		"some preamble",
		"| Rank | Name |",
		"| ---- | ---- |",
		"| 1    | Ada  |",
		"| 2    | Bo   |",
	}
	header, rows := extractMarkdown(lines)
	assert.Equal(t, []string{"Rank", "Name"}, header)
	assert.Equal(t, [][]string{{"1", "Ada"}, {"2", "Bo"}}, rows)
}

func TestExtractMarkdownTooFewPipeRows(t *testing.T) {
	t.Parallel()
	header, rows := extractMarkdown([]string{"| only |"})
	assert.Nil(t, header)
	assert.Nil(t, rows)
}

func TestExtractDelimitedNoHeader(t *testing.T) {
	t.Parallel()
	header, rows := extractDelimited([]string{"1,Ada", "2,Bo"}, ",")
	assert.Nil(t, header)
	assert.Equal(t, [][]string{{"1", "Ada"}, {"2", "Bo"}}, rows)
}

func TestExtractSpacedKeepsSingleSpaceValues(t *testing.T) {
	t.Parallel()
	header, rows := extractSpaced([]string{
		"Rank  Player       City",
		"1     Mia O'Brien  New Haven",
	})
	assert.Equal(t, []string{"Rank", "Player", "City"}, header)
	assert.Equal(t, [][]string{{"1", "Mia O'Brien", "New Haven"}}, rows)
}

func TestNormalizeKey(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"Full Name", "full_name"},
		{"Rating (avg)", "rating_avg"},
		{"  City  ", "city"},
		{"already_normal", "already_normal"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeKey(tt.in))
		// Idempotent.
		assert.Equal(t, tt.want, normalizeKey(tt.want))
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"O'Brien", "obrien"},
		{"  New   York!!", "new-york"},
		{"Mia O’Brien-1", "mia-obrien-1"},
		{"---", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.in))
	}
}

func TestCoerceRank(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 12.0, coerceRank("#12"))
	assert.Equal(t, 12.0, coerceRank("12"))
	assert.Nil(t, coerceRank("rank: none"))
}

func TestCoerceRating(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 8.5, coerceRating("8.5"))
	assert.Equal(t, -3.0, coerceRating("-3"))
	assert.Nil(t, coerceRating("n/a"))
}

func TestIsJunk(t *testing.T) {
	t.Parallel()
	assert.True(t, isJunk([]string{"---", "---"}))
	assert.True(t, isJunk([]string{"----"}))
	assert.True(t, isJunk([]string{"x"}))
	assert.True(t, isJunk([]string{""}))
	assert.False(t, isJunk([]string{"ok"}))
	assert.False(t, isJunk([]string{"x", "y"}))
}

func TestNormalizeRowMissingAndExtraCells(t *testing.T) {
	t.Parallel()
	header := []string{"rank", "name", "city"}
	rec := normalizeRow([]string{"1", "Ada"}, header, 0, Options{NoID: true})
	v, ok := rec.Get("city")
	assert.True(t, ok, "missing cell still yields the key")
	assert.Equal(t, "", v)

	rec = normalizeRow([]string{"1", "Ada", "Rome", "extra"}, header, 0, Options{NoID: true})
	assert.Equal(t, 3, rec.Len(), "cells beyond the header are dropped")
}

func TestMakeIDFallbackSequence(t *testing.T) {
	t.Parallel()
	rec := normalizeRow([]string{"Ada", "Rome"}, nil, 4, Options{})
	v, _ := rec.Get("id")
	// No rank: base is col2, suffix is produced+1.
	assert.Equal(t, "rome-5", v)
}

func TestResolveHeader(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"a"}, resolveHeader([]string{"a"}, []string{"b"}))
	assert.Equal(t, []string{"b"}, resolveHeader(nil, []string{"b"}))
	assert.Nil(t, resolveHeader(nil, nil))
}

func TestCellString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", cellString(nil))
	assert.Equal(t, "12", cellString(12.0))
	assert.Equal(t, "8.5", cellString(8.5))
	assert.Equal(t, "x", cellString("x"))
}

func TestSortByRankFirstRecordDecides(t *testing.T) {
	t.Parallel()
	var a, b Record
	a.set("rank", nil)
	a.set("name", "first")
	b.set("rank", 1.0)
	b.set("name", "second")
	records := []Record{a, b}
	sortByRank(records)
	// First record's rank is null, so order is untouched.
	v, _ := records[0].Get("name")
	assert.Equal(t, "first", v)
}

func TestSetLastMovesKey(t *testing.T) {
	t.Parallel()
	var rec Record
	rec.set("a", "1")
	rec.set("b", "2")
	rec.setLast("a", "3")
	assert.Equal(t, []string{"b", "a"}, rec.Keys())
	v, _ := rec.Get("a")
	assert.Equal(t, "3", v)
}

func TestPadCellWideChars(t *testing.T) {
	t.Parallel()
	// Full-width characters occupy two columns.
	padded := padCell("你好", 6)
	assert.Equal(t, "你好  ", padded)
	assert.False(t, strings.Contains(padCell("abc", 2), " "))
}
