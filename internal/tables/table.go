// Package tables reads the 2DA text tables that hold static rules data.
//
// A 2DA file looks like:
//
//	2DA V1.0
//	0
//	         NAME_REF  ID  MULTI
//	FIGHTER  9000      2   0
//	MAGE     9001      1   0
//
// The second line is the default value returned for cells a row omits.
package tables

// NotFound is returned by index lookups that find nothing
const NotFound = -1

// Table is a read-only rules table addressable by row and column index or name
type Table interface {
	Name() string
	RowCount() int
	ColumnCount() int
	RowName(row int) string
	ColumnName(col int) string
	// RowIndex returns NotFound for an unknown row name
	RowIndex(name string) int
	// ColumnIndex returns NotFound for an unknown column name
	ColumnIndex(name string) int
	Value(row, col int) string
	Int(row, col int) int
	ValueByName(row, col string) string
	IntByName(row, col string) int
	// FindValue returns the first row whose cell in col equals needle, or NotFound
	FindValue(col, needle int) int
}
