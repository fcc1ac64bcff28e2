package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseCSV reads a header-keyed CSV roster. Unknown columns are ignored;
// rows that cannot be parsed become RowErrors rather than aborting the file.
func ParseCSV(r io.Reader) ([]Row, []RowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, errors.Wrap(err, "reading csv header")
	}

	columns := map[string]int{}
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["team_id"]; !ok {
		return nil, nil, errors.New("csv is missing the team_id column")
	}

	var (
		rows    []Row
		rowErrs []RowError
	)

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Error: err.Error()})
			continue
		}

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

func rowFromRecord(record []string, columns map[string]int, line int) (Row, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	row := Row{
		Line:         line,
		TeamID:       field("team_id"),
		TeamName:     field("team_name"),
		College:      field("college"),
		LeaderName:   field("leader_name"),
		LeaderEmail:  field("leader_email"),
		LeaderPhone:  field("leader_phone"),
		MemberName:   field("member_name"),
		MemberPhone:  field("member_phone"),
		MemberGender: field("member_gender"),
	}

	if size := field("team_size"); size != "" {
		n, err := strconv.Atoi(size)
		if err != nil {
			return Row{}, fmt.Errorf("team_size must be an integer, got %q", size)
		}
		row.TeamSize = &n
	}

	return row, nil
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
