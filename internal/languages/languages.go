// Package languages maps ISO-639 language codes to language names.
//
// Tables are tab-separated with one name and one code per line and no
// header. Codes are matched exactly, including case.
package languages

import (
	"embed"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/hightemp/codeconv/internal/resource"
)

// DefaultResource is the name of the embedded language table.
const DefaultResource = "language-codes.txt"

const numFields = 2

//go:embed language-codes.txt
var embedded embed.FS

var (
	defaultTable *Table
	defaultErr   error
	once         sync.Once
)

// Table is an immutable code to name mapping. Reverse lookups scan codes
// in the order they first appeared in the source.
type Table struct {
	codeToName map[string]string
	codes      []string
}

// Option configures loading.
type Option func(*options)

type options struct {
	log logrus.FieldLogger
}

// WithLogger sets the sink for load diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Default returns the table built from the embedded resource.
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

// Parse builds a table from r.
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

	t := &Table{codeToName: make(map[string]string)}
	for i, line := range lines {
		parts := resource.Fields(line)
		if len(parts) != numFields {
			l.WithFields(logrus.Fields{"line": i + 1, "text": line}).Debug("invalid line")
			continue
		}
		language := strings.TrimSpace(parts[0])
		code := strings.TrimSpace(parts[1])
		if _, seen := t.codeToName[code]; !seen {
			t.codes = append(t.codes, code)
		}
		t.codeToName[code] = language
	}

	l.WithField("count", len(t.codeToName)).Debug("loaded languages")
	return t
}

// Name returns the language name for code. The code must match exactly.
func (t *Table) Name(code string) (string, bool) {
	name, ok := t.codeToName[code]
	return name, ok
}

// Code returns the code of the first entry whose name equals name.
func (t *Table) Code(name string) (string, bool) {
	for _, code := range t.codes {
		if t.codeToName[code] == name {
			return code, true
		}
	}
	return "", false
}

// Count returns the number of codes, so a name listed under two codes
// is counted twice.
func (t *Table) Count() int {
	return len(t.codeToName)
}

// Codes returns all codes in table order.
func (t *Table) Codes() []string {
	result := make([]string, len(t.codes))
	copy(result, t.codes)
	return result
}
