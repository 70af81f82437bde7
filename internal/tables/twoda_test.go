package tables_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/ie-chargen/internal/errors"
	"github.com/KirkDiggler/ie-chargen/internal/tables"
)

const classesFixture = `2DA V1.0
*
              NAME_REF  ID  MULTI  MC_WAS_ID
MAGE          9001      1   0      0x0010
FIGHTER       9000      2   0      0x0008
FIGHTER_MAGE  9010      7   1
`

type TwoDATestSuite struct {
	suite.Suite
	table *tables.TwoDA
}

func TestTwoDASuite(t *testing.T) {
	suite.Run(t, new(TwoDATestSuite))
}

func (s *TwoDATestSuite) SetupTest() {
	table, err := tables.Parse("classes", strings.NewReader(classesFixture))
	s.Require().NoError(err)
	s.table = table
}

func (s *TwoDATestSuite) TestShape() {
	s.Equal("CLASSES", s.table.Name())
	s.Equal(3, s.table.RowCount())
	s.Equal(4, s.table.ColumnCount())
	s.Equal("FIGHTER_MAGE", s.table.RowName(2))
	s.Equal("MULTI", s.table.ColumnName(2))
	s.Equal("", s.table.RowName(3))
}

func (s *TwoDATestSuite) TestLookupByNameAndIndex() {
	s.Equal(1, s.table.RowIndex("fighter"))
	s.Equal(tables.NotFound, s.table.RowIndex("BARD"))
	s.Equal(1, s.table.ColumnIndex("id"))
	s.Equal(tables.NotFound, s.table.ColumnIndex("LOWER"))

	s.Equal(2, s.table.Int(1, 1))
	s.Equal(2, s.table.IntByName("FIGHTER", "ID"))
	s.Equal("9010", s.table.ValueByName("FIGHTER_MAGE", "NAME_REF"))
}

func (s *TwoDATestSuite) TestHexValues() {
	s.Equal(0x10, s.table.IntByName("MAGE", "MC_WAS_ID"))
	s.Equal(0x08, s.table.IntByName("FIGHTER", "MC_WAS_ID"))
}

func (s *TwoDATestSuite) TestMissingCellsUseDefault() {
	s.Equal("*", s.table.ValueByName("FIGHTER_MAGE", "MC_WAS_ID"))
	s.Equal(0, s.table.IntByName("FIGHTER_MAGE", "MC_WAS_ID"))
	s.Equal("*", s.table.Value(10, 0))
}

func (s *TwoDATestSuite) TestFindValue() {
	s.Equal(2, s.table.FindValue(1, 7))
	s.Equal(0, s.table.FindValue(3, 0x10))
	s.Equal(tables.NotFound, s.table.FindValue(1, 99))
	s.Equal(tables.NotFound, s.table.FindValue(12, 1))
}

func (s *TwoDATestSuite) TestParseErrors() {
	testCases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"header only", "2DA V1.0\n0\n"},
		{"bad signature", "XDA V1.0\n0\nA B\nROW 1 2\n"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := tables.Parse("broken", strings.NewReader(tc.input))
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *TwoDATestSuite) TestLoadFS() {
	fsys := fstest.MapFS{
		"classes.2da": {Data: []byte(classesFixture)},
	}

	table, err := tables.LoadFS(fsys, "CLASSES")
	s.Require().NoError(err)
	s.Equal(3, table.RowCount())

	_, err = tables.LoadFS(fsys, "KITLIST")
	s.Error(err)
	s.True(errors.IsNotFound(err))
}
