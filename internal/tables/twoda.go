package tables

import (
	"bufio"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/KirkDiggler/ie-chargen/internal/errors"
)

const signature = "2DA"

// TwoDA is an in-memory 2DA table
type TwoDA struct {
	name         string
	defaultValue string
	columns      []string
	rows         []string
	cells        [][]string
	rowIndex     map[string]int
	columnIndex  map[string]int
}

var _ Table = (*TwoDA)(nil)

// Parse reads a 2DA table from r
func Parse(name string, r io.Reader) (*TwoDA, error) {
	scanner := bufio.NewScanner(r)
	var lines [][]string
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		lines = append(lines, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read table %s", name)
	}

	if len(lines) < 3 {
		return nil, errors.InvalidArgumentf("table %s: missing header", name).
			WithMeta("lines", len(lines))
	}
	if !strings.EqualFold(lines[0][0], signature) {
		return nil, errors.InvalidArgumentf("table %s: bad signature %q", name, lines[0][0])
	}

	t := &TwoDA{
		name:         strings.ToUpper(name),
		defaultValue: lines[1][0],
		columns:      lines[2],
		rowIndex:     make(map[string]int),
		columnIndex:  make(map[string]int, len(lines[2])),
	}
	for i, col := range t.columns {
		t.columnIndex[strings.ToUpper(col)] = i
	}

	for _, fields := range lines[3:] {
		rowName := fields[0]
		cells := make([]string, len(t.columns))
		for i := range cells {
			if i+1 < len(fields) {
				cells[i] = fields[i+1]
			} else {
				cells[i] = t.defaultValue
			}
		}
		key := strings.ToUpper(rowName)
		if _, dup := t.rowIndex[key]; !dup {
			t.rowIndex[key] = len(t.rows)
		}
		t.rows = append(t.rows, rowName)
		t.cells = append(t.cells, cells)
	}

	return t, nil
}

// LoadFS opens <name>.2da from fsys, trying the name as given and in lower case
func LoadFS(fsys fs.FS, name string) (*TwoDA, error) {
	var lastErr error
	for _, candidate := range []string{name + ".2da", strings.ToLower(name) + ".2da"} {
		f, err := fsys.Open(candidate)
		if err != nil {
			lastErr = err
			continue
		}
		defer f.Close()
		return Parse(name, f)
	}
	return nil, errors.WrapWithCodef(lastErr, errors.CodeNotFound, "table %s not found", name)
}

// Name returns the upper case table name
func (t *TwoDA) Name() string { return t.name }

// RowCount returns the number of data rows
func (t *TwoDA) RowCount() int { return len(t.rows) }

// ColumnCount returns the number of data columns
func (t *TwoDA) ColumnCount() int { return len(t.columns) }

// RowName returns the name of a row, or "" when out of range
func (t *TwoDA) RowName(row int) string {
	if row < 0 || row >= len(t.rows) {
		return ""
	}
	return t.rows[row]
}

// ColumnName returns the name of a column, or "" when out of range
func (t *TwoDA) ColumnName(col int) string {
	if col < 0 || col >= len(t.columns) {
		return ""
	}
	return t.columns[col]
}

// RowIndex looks a row up by case-insensitive name
func (t *TwoDA) RowIndex(name string) int {
	if i, ok := t.rowIndex[strings.ToUpper(name)]; ok {
		return i
	}
	return NotFound
}

// ColumnIndex looks a column up by case-insensitive name
func (t *TwoDA) ColumnIndex(name string) int {
	if i, ok := t.columnIndex[strings.ToUpper(name)]; ok {
		return i
	}
	return NotFound
}

// Value returns a raw cell, or the table default when out of range
func (t *TwoDA) Value(row, col int) string {
	if row < 0 || row >= len(t.cells) || col < 0 || col >= len(t.columns) {
		return t.defaultValue
	}
	return t.cells[row][col]
}

// Int returns a cell as an integer. Decimal and 0x hex are accepted;
// anything else reads as 0.
func (t *TwoDA) Int(row, col int) int {
	return parseInt(t.Value(row, col))
}

// ValueByName returns a cell addressed by row and column name
func (t *TwoDA) ValueByName(row, col string) string {
	return t.Value(t.RowIndex(row), t.ColumnIndex(col))
}

// IntByName returns an integer cell addressed by row and column name
func (t *TwoDA) IntByName(row, col string) int {
	return t.Int(t.RowIndex(row), t.ColumnIndex(col))
}

// FindValue scans a column for the first row holding needle
func (t *TwoDA) FindValue(col, needle int) int {
	if col < 0 || col >= len(t.columns) {
		return NotFound
	}
	for row := range t.cells {
		if v, ok := tryParseInt(t.cells[row][col]); ok && v == needle {
			return row
		}
	}
	return NotFound
}

func parseInt(s string) int {
	v, _ := tryParseInt(s)
	return v
}

func tryParseInt(s string) (int, bool) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, false
	}
	return int(v), true
}
