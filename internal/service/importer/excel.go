package importer

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// ParseExcel reads an .xlsx roster. The first sheet is used; the first row
// must be the same header the CSV format uses.
func ParseExcel(r io.Reader) ([]Row, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening xlsx")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errors.New("xlsx has no sheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, errors.Wrap(err, "reading xlsx rows")
	}
	if len(records) == 0 {
		return nil, nil, errors.New("xlsx sheet is empty")
	}

	columns := map[string]int{}
	for i, name := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["team_id"]; !ok {
		return nil, nil, errors.New("xlsx is missing the team_id column")
	}

	var (
		rows    []Row
		rowErrs []RowError
	)

	for i, record := range records[1:] {
		line := i + 2
		if blank(record) {
			continue
		}

		row, err := rowFromRecord(record, columns, line)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Error: err.Error()})
			continue
		}
		rows = append(rows, row)
	}

	return rows, rowErrs, nil
}

// ParseFile dispatches on the file extension: .xlsx goes through excelize,
// anything else is treated as CSV.
func ParseFile(name string, r io.Reader) ([]Row, []RowError, error) {
	if strings.HasSuffix(strings.ToLower(name), ".xlsx") {
		return ParseExcel(r)
	}
	return ParseCSV(r)
}
