// Package countries provides ISO-3166 country name and code mappings
// loaded from tab-separated tables.
//
// The table format is a header line followed by rows of
// name, alpha-2 code and alpha-3 code. Extra columns are ignored.
package countries

import (
	"embed"
	"io"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/hightemp/codeconv/internal/resource"
)

// DefaultResource is the name of the embedded country table.
const DefaultResource = "country-codes.txt"

const minFields = 3

//go:embed country-codes.txt
var embedded embed.FS

var (
	defaultTable *Table
	defaultErr   error
	once         sync.Once
)

// Table maps country codes to names and names to their alpha-2 code.
// A Table is immutable once built and safe for concurrent reads.
type Table struct {
	codeToName map[string]string
	nameToCode map[string]string
	names      []string
}

// Option configures loading.
type Option func(*options)

type options struct {
	log logrus.FieldLogger
}

// WithLogger sets the sink for load diagnostics. Diagnostics are
// discarded by default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Default returns the table built from the embedded resource.
// The table is parsed once and shared.
func Default() (*Table, error) {
	once.Do(func() {
		defaultTable, defaultErr = Embedded()
	})
	return defaultTable, defaultErr
}

// Embedded parses a fresh copy of the embedded table.
func Embedded(opts ...Option) (*Table, error) {
	return Load(embedded, DefaultResource, opts...)
}

// Load builds a table from the named resource in fsys.
func Load(fsys fs.FS, name string, opts ...Option) (*Table, error) {
	lines, err := resource.Read(fsys, name)
	if err != nil {
		return nil, err
	}
	return build(name, lines, opts), nil
}

// LoadFile builds a table from a file on disk.
func LoadFile(path string, opts ...Option) (*Table, error) {
	lines, err := resource.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return build(path, lines, opts), nil
}

// Parse builds a table from r. name identifies the source in errors and logs.
func Parse(r io.Reader, name string, opts ...Option) (*Table, error) {
	lines, err := resource.Parse(r, name)
	if err != nil {
		return nil, err
	}
	return build(name, lines, opts), nil
}

func build(name string, lines []string, opts []Option) *Table {
	o := &options{log: resource.NopLogger()}
	for _, opt := range opts {
		opt(o)
	}
	l := o.log.WithField("resource", name)

	t := &Table{
		codeToName: make(map[string]string),
		nameToCode: make(map[string]string),
	}

	// First line is the header.
	for i := 1; i < len(lines); i++ {
		parts := resource.Fields(lines[i])
		if len(parts) < minFields {
			l.WithFields(logrus.Fields{"line": i + 1, "fields": len(parts)}).Debug("skipping malformed row")
			continue
		}
		country := strings.TrimSpace(parts[0])
		alpha2 := strings.TrimSpace(parts[1])
		alpha3 := strings.TrimSpace(parts[2])
		l.WithFields(logrus.Fields{"country": country, "alpha2": alpha2, "alpha3": alpha3}).Trace("loading")

		t.codeToName[strings.ToUpper(alpha2)] = country
		t.codeToName[strings.ToUpper(alpha3)] = country
		if _, seen := t.nameToCode[country]; !seen {
			t.names = append(t.names, country)
		}
		t.nameToCode[country] = alpha2
	}

	l.WithField("count", len(t.nameToCode)).Debug("loaded countries")
	return t
}

// Name returns the country name for an alpha-2 or alpha-3 code.
// The code is matched case-insensitively.
func (t *Table) Name(code string) (string, bool) {
	name, ok := t.codeToName[strings.ToUpper(code)]
	return name, ok
}

// Code returns the alpha-2 code for a country name. Surrounding
// whitespace is ignored; case is not.
func (t *Table) Code(name string) (string, bool) {
	code, ok := t.nameToCode[strings.TrimSpace(name)]
	return code, ok
}

// NameFor is like Name but returns a descriptive placeholder on a miss.
func (t *Table) NameFor(code string) string {
	if name, ok := t.Name(code); ok {
		return name
	}
	return NameNotFound(code)
}

// CodeFor is like Code but returns a descriptive placeholder on a miss.
func (t *Table) CodeFor(name string) string {
	if code, ok := t.Code(name); ok {
		return code
	}
	return CodeNotFound(name)
}

// NameNotFound is the text NameFor returns for an unknown code.
func NameNotFound(code string) string {
	return "Country not found for code: " + code
}

// CodeNotFound is the text CodeFor returns for an unknown name.
func CodeNotFound(name string) string {
	return "Code not found for country: " + name
}

// Count returns the number of distinct countries.
func (t *Table) Count() int {
	return len(t.nameToCode)
}

// Codes returns all known codes (uppercase, sorted).
func (t *Table) Codes() []string {
	result := make([]string, 0, len(t.codeToName))
	for c := range t.codeToName {
		result = append(result, c)
	}
	sort.Strings(result)
	return result
}

// Names returns the distinct country names in table order.
func (t *Table) Names() []string {
	result := make([]string, len(t.names))
	copy(result, t.names)
	return result
}
