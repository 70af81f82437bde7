// Package tlk resolves string references to localized text.
//
// String tables are YAML documents, one per locale:
//
//	locale: en-US
//	strings:
//	  9000: Fighter
//	  9001: Mage
package tlk

import (
	"io/fs"
	"sort"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/ie-chargen/internal/errors"
)

// BaseLocale is used when no requested locale matches
const BaseLocale = "en-US"

// Resolver turns a string reference into display text
type Resolver interface {
	// Resolve returns "" for an unknown reference
	Resolve(ref int) string
}

// Table holds the strings of one locale
type Table struct {
	Locale  string         `yaml:"locale"`
	Strings map[int]string `yaml:"strings"`
}

var _ Resolver = (*Table)(nil)

// Resolve returns the text for ref
func (t *Table) Resolve(ref int) string {
	if t == nil {
		return ""
	}
	return t.Strings[ref]
}

// Parse decodes one YAML string table
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode string table")
	}
	if t.Locale == "" {
		return nil, errors.InvalidArgument("string table has no locale")
	}
	if _, err := language.Parse(t.Locale); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "string table locale %q", t.Locale)
	}
	if t.Strings == nil {
		t.Strings = map[int]string{}
	}
	return &t, nil
}

// Bundle holds the string tables of every available locale
type Bundle struct {
	tables  map[string]*Table
	tags    []language.Tag
	matcher language.Matcher
}

// LoadFS loads every tlk/*.yaml file in fsys
func LoadFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "tlk/*.yaml")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list string tables")
	}
	if len(paths) == 0 {
		return nil, errors.NotFound("no string tables found")
	}
	sort.Strings(paths)

	var loaded []*Table
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}
		t, err := Parse(data)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s", path).WithMeta("path", path)
		}
		loaded = append(loaded, t)
	}

	return NewBundle(loaded...)
}

// NewBundle builds a bundle from tables. Duplicate locales are an error.
func NewBundle(tables ...*Table) (*Bundle, error) {
	b := &Bundle{tables: make(map[string]*Table, len(tables))}

	// base locale first so the matcher falls back to it
	sort.SliceStable(tables, func(i, j int) bool {
		return tables[i].Locale == BaseLocale && tables[j].Locale != BaseLocale
	})
	for _, t := range tables {
		tag := language.Make(t.Locale)
		key := tag.String()
		if _, dup := b.tables[key]; dup {
			return nil, errors.AlreadyExistsf("duplicate string table for locale %s", key)
		}
		b.tables[key] = t
		b.tags = append(b.tags, tag)
	}
	if len(b.tags) == 0 {
		return nil, errors.InvalidArgument("at least one string table is required")
	}
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

// Locales lists the loaded locales, base locale first
func (b *Bundle) Locales() []string {
	out := make([]string, len(b.tags))
	for i, tag := range b.tags {
		out[i] = tag.String()
	}
	return out
}

// ForLocale returns the best matching string table for a BCP 47 locale
func (b *Bundle) ForLocale(locale string) *Table {
	if locale == "" {
		locale = BaseLocale
	}
	_, index, _ := b.matcher.Match(language.Make(locale))
	return b.tables[b.tags[index].String()]
}

// Chain resolves through each resolver in turn until one knows the reference
type Chain []Resolver

var _ Resolver = Chain(nil)

// Resolve returns the first non-empty text for ref
func (c Chain) Resolve(ref int) string {
	for _, r := range c {
		if text := r.Resolve(ref); text != "" {
			return text
		}
	}
	return ""
}

// ResolverFor returns the best matching table for locale, falling back to
// the base locale for strings it lacks
func (b *Bundle) ResolverFor(locale string) Resolver {
	t := b.ForLocale(locale)
	base, ok := b.tables[language.Make(BaseLocale).String()]
	if !ok || base == t {
		return t
	}
	return Chain{t, base}
}
