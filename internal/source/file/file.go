package file

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"

	"interndash/internal"
	"interndash/internal/util"
)

// ParseGrid converts an uploaded or local spreadsheet export into a raw
// grid, picking the parser from the file extension. The result feeds the
// same normalizer as the live sheet fetch.
func ParseGrid(filename string, content []byte) (internal.RawGrid, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(content)
	case ".xlsx", ".xls":
		return parseXLSX(content)
	case ".html", ".htm":
		return parseHTMLTable(content)
	default:
		return nil, fmt.Errorf("unsupported grid file type: %s", filename)
	}
}

func ParseGridFile(path string) (internal.RawGrid, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseGrid(path, content)
}

func parseCSV(content []byte) (internal.RawGrid, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return internal.RawGrid(rows), nil
}

func parseXLSX(content []byte) (internal.RawGrid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return internal.RawGrid{}, nil
	}

	// The dashboard reads a single sheet; extra sheets are ignored.
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return internal.RawGrid(rows), nil
}

func parseHTMLTable(content []byte) (internal.RawGrid, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	grid := internal.RawGrid{}
	table := doc.Find("table").First()
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := []string{}
		row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, util.NormalizeSpaces(cell.Text()))
		})
		if len(cells) > 0 {
			grid = append(grid, cells)
		}
	})
	return grid, nil
}
