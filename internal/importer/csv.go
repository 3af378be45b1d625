package importer

import (
	"errors"
	"strings"
)

// ErrNoData is returned when a file has no header row plus at least one
// data row. A header-only file is rejected, never treated as zero rows.
var ErrNoData = errors.New("importer: file is empty or missing data")

// Row is one parsed data row keyed by canonical field name.
type Row map[string]string

// delimiters are the candidates tried by DetectDelimiter, in priority
// order. Ties go to the earlier candidate.
var delimiters = []byte{',', '\t', ';'}

// DetectDelimiter picks the candidate that splits the header line into the
// most fields.
func DetectDelimiter(headerLine string) byte {
	best := delimiters[0]
	maxCount := 0
	for _, d := range delimiters {
		count := strings.Count(headerLine, string(d)) + 1
		if count > maxCount {
			maxCount = count
			best = d
		}
	}
	return best
}

// ParseRow splits one line on delim with RFC4180-style quoting: a doubled
// quote inside a quoted field unescapes to a single quote, a lone quote
// toggles the in-quotes state, and the delimiter only ends a field outside
// quotes. Fields are trimmed of surrounding whitespace.
func ParseRow(line string, delim byte) []string {
	var values []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"' && i+1 < len(line) && line[i+1] == '"':
			current.WriteByte('"')
			i++
		case ch == '"':
			inQuotes = !inQuotes
		case ch == delim && !inQuotes:
			values = append(values, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	values = append(values, strings.TrimSpace(current.String()))
	return values
}

// ParseCSV turns raw delimited text into rows keyed by canonical field
// name. The first non-blank line is the header; blank lines are skipped
// everywhere. Returns ErrNoData unless there is a header plus at least one
// data line. Columns whose header normalizes to "" are dropped.
func ParseCSV(text string) ([]Row, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil, ErrNoData
	}

	delim := DetectDelimiter(lines[0])
	headers := NormalizeHeaders(ParseRow(lines[0], delim))

	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := ParseRow(line, delim)
		rows = append(rows, zipRow(headers, values))
	}
	return rows, nil
}

// zipRow pairs normalized headers with cell values. Missing cells become
// empty strings; when two columns normalize to the same key the later one
// wins.
func zipRow(headers, values []string) Row {
	row := Row{}
	for i, h := range headers {
		if h == "" {
			continue
		}
		if i < len(values) {
			row[h] = values[i]
		} else {
			row[h] = ""
		}
	}
	return row
}
