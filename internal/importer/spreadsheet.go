package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseWorkbook reads the first sheet of an .xlsx workbook into rows keyed
// by canonical field name. The first non-fully-blank row is the header;
// later fully-blank rows are skipped. Cells are trimmed and missing
// trailing cells become empty strings.
func ParseWorkbook(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("importer: open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoData
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("importer: read sheet %s: %w", sheets[0], err)
	}

	var headers []string
	rows := []Row{}
	for _, cells := range raw {
		if isBlankRow(cells) {
			continue
		}
		if headers == nil {
			headers = NormalizeHeaders(trimCells(cells))
			continue
		}
		rows = append(rows, zipRow(headers, trimCells(cells)))
	}

	if headers == nil || len(rows) == 0 {
		return nil, ErrNoData
	}
	return rows, nil
}

func trimCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return out
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
