package importer_test

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/shashiranjanraj/leadhub/internal/importer"
)

// workbookBytes builds an in-memory .xlsx with the given rows on the first
// sheet. Row i lands on spreadsheet row i+1.
func workbookBytes(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, cells := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name for row %d: %v", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			t.Fatalf("set row %d: %v", i+1, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestParseWorkbook(t *testing.T) {
	data := workbookBytes(t, [][]interface{}{
		{" "},                                      // leading blank row before the header
		{" Email ", "First Name", "Company Name"},  // header with padding
		{"   "},                                    // blank row between data
		{"a@b.com", " Ada ", " Acme Fitness "},     // cells need trimming
		{"b@c.com", "Bo"},                          // short row, trailing cell missing
	})

	rows, err := importer.ParseWorkbook(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ParseWorkbook: %v", err)
	}

	want := []importer.Row{
		{"email": "a@b.com", "firstName": "Ada", "websiteName": "Acme Fitness"},
		{"email": "b@c.com", "firstName": "Bo", "websiteName": ""},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("ParseWorkbook = %v, want %v", rows, want)
	}
}

func TestParseWorkbook_HeaderOnly(t *testing.T) {
	data := workbookBytes(t, [][]interface{}{
		{"Email", "First Name"},
	})

	if _, err := importer.ParseWorkbook(bytes.NewReader(data)); !errors.Is(err, importer.ErrNoData) {
		t.Errorf("ParseWorkbook(header only) = %v, want ErrNoData", err)
	}
}

func TestParseWorkbook_EmptySheet(t *testing.T) {
	data := workbookBytes(t, nil)

	if _, err := importer.ParseWorkbook(bytes.NewReader(data)); !errors.Is(err, importer.ErrNoData) {
		t.Errorf("ParseWorkbook(empty sheet) = %v, want ErrNoData", err)
	}
}

func TestParseWorkbook_NotAWorkbook(t *testing.T) {
	if _, err := importer.ParseWorkbook(bytes.NewReader([]byte("email,name\na@b.com,Ada"))); err == nil {
		t.Error("ParseWorkbook(plain text) = nil error, want open failure")
	}
}
