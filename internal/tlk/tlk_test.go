package tlk_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/ie-chargen/internal/errors"
	"github.com/KirkDiggler/ie-chargen/internal/tlk"
)

const (
	englishFixture = `locale: en-US
strings:
  9000: Fighter
  9001: Mage
  9002: Thief
`
	germanFixture = `locale: de-DE
strings:
  9000: Kämpfer
  9001: Magier
`
)

type TLKTestSuite struct {
	suite.Suite
	bundle *tlk.Bundle
}

func TestTLKSuite(t *testing.T) {
	suite.Run(t, new(TLKTestSuite))
}

func (s *TLKTestSuite) SetupTest() {
	bundle, err := tlk.LoadFS(fstest.MapFS{
		"tlk/de.yaml": {Data: []byte(germanFixture)},
		"tlk/en.yaml": {Data: []byte(englishFixture)},
	})
	s.Require().NoError(err)
	s.bundle = bundle
}

func (s *TLKTestSuite) TestLocalesBaseFirst() {
	s.Equal([]string{"en-US", "de-DE"}, s.bundle.Locales())
}

func (s *TLKTestSuite) TestForLocale() {
	testCases := []struct {
		locale   string
		expected string
	}{
		{"", "Fighter"},
		{"en-US", "Fighter"},
		{"de-DE", "Kämpfer"},
		{"de", "Kämpfer"},
		{"ja-JP", "Fighter"},
	}

	for _, tc := range testCases {
		s.Run(tc.locale, func() {
			s.Equal(tc.expected, s.bundle.ForLocale(tc.locale).Resolve(9000))
		})
	}
}

func (s *TLKTestSuite) TestResolverForFallsBackToBase() {
	german := s.bundle.ResolverFor("de-DE")
	s.Equal("Magier", german.Resolve(9001))
	s.Equal("Thief", german.Resolve(9002))
	s.Equal("", german.Resolve(42))

	s.Equal("Thief", s.bundle.ResolverFor("en-US").Resolve(9002))
}

func (s *TLKTestSuite) TestUnknownRef() {
	s.Equal("", s.bundle.ForLocale("en-US").Resolve(42))

	var nilTable *tlk.Table
	s.Equal("", nilTable.Resolve(9000))
}

func (s *TLKTestSuite) TestParseErrors() {
	_, err := tlk.Parse([]byte("strings:\n  1: a\n"))
	s.True(errors.IsInvalidArgument(err))

	_, err = tlk.Parse([]byte("locale: [oops"))
	s.True(errors.IsInvalidArgument(err))
}

func (s *TLKTestSuite) TestDuplicateLocale() {
	a, err := tlk.Parse([]byte(englishFixture))
	s.Require().NoError(err)
	b, err := tlk.Parse([]byte(englishFixture))
	s.Require().NoError(err)

	_, err = tlk.NewBundle(a, b)
	s.True(errors.IsAlreadyExists(err))
}

func (s *TLKTestSuite) TestNoTables() {
	_, err := tlk.LoadFS(fstest.MapFS{})
	s.True(errors.IsNotFound(err))
}
