package importer_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shashiranjanraj/leadhub/internal/importer"
)

func TestDetectDelimiter(t *testing.T) {
	cases := []struct {
		line string
		want byte
	}{
		{"a,b,c,d", ','},
		{"a\tb\tc\td\te\tf", '\t'},
		{"a;b;c", ';'},
		{"a,b,c\td", ','}, // comma splits more fields than tab
		{"single", ','},   // tie at 1 field each, first candidate wins
	}
	for _, c := range cases {
		if got := importer.DetectDelimiter(c.line); got != c.want {
			t.Errorf("DetectDelimiter(%q) = %q, want %q", c.line, got, c.want)
		}
	}
}

func TestParseRow_QuotedFields(t *testing.T) {
	got := importer.ParseRow(`a,"b,c","d""e",f`, ',')
	want := []string{"a", "b,c", `d"e`, "f"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseRow = %v, want %v", got, want)
	}
}

func TestParseRow_TrimsFields(t *testing.T) {
	got := importer.ParseRow("  a ,\tb\t, c ", ',')
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseRow = %v, want %v", got, want)
	}
}

func TestParseRow_DelimiterInsideQuotesIsLiteral(t *testing.T) {
	got := importer.ParseRow(`"Smith, John";x`, ';')
	want := []string{"Smith, John", "x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseRow = %v, want %v", got, want)
	}
}

func TestParseCSV_HeaderOnlyRejected(t *testing.T) {
	_, err := importer.ParseCSV("First Name,Email\n")
	if !errors.Is(err, importer.ErrNoData) {
		t.Errorf("expected ErrNoData for header-only file, got %v", err)
	}
}

func TestParseCSV_EmptyRejected(t *testing.T) {
	for _, text := range []string{"", "\n\n\n", "   \n  \n"} {
		if _, err := importer.ParseCSV(text); !errors.Is(err, importer.ErrNoData) {
			t.Errorf("ParseCSV(%q): expected ErrNoData, got %v", text, err)
		}
	}
}

func TestParseCSV_SkipsBlankLines(t *testing.T) {
	rows, err := importer.ParseCSV("First Name,Email\n\nJane,jane@acme.com\r\n\r\nBob,bob@beta.com\n")
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["firstName"] != "Jane" || rows[1]["email"] != "bob@beta.com" {
		t.Errorf("unexpected rows: %v", rows)
	}
}

func TestParseCSV_TabDelimited(t *testing.T) {
	rows, err := importer.ParseCSV("First Name\tLast Name\tEmail\nJane\tDoe\tjane@acme.com")
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	want := importer.Row{"firstName": "Jane", "lastName": "Doe", "email": "jane@acme.com"}
	if !reflect.DeepEqual(rows[0], want) {
		t.Errorf("row = %v, want %v", rows[0], want)
	}
}

func TestParseCSV_ShortRowFillsEmpty(t *testing.T) {
	rows, err := importer.ParseCSV("First Name,Last Name,Email\nJane")
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if rows[0]["lastName"] != "" || rows[0]["email"] != "" {
		t.Errorf("missing cells should be empty strings, got %v", rows[0])
	}
}
