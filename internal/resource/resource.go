// Package resource resolves and decodes the tab-separated code tables.
package resource

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/unicode"
)

// Load operations reported in LoadError.Op.
const (
	OpOpen   = "open"
	OpRead   = "read"
	OpDecode = "decode"
)

// ErrInvalidUTF8 is the cause of a decode failure.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// LoadError is returned when a resource cannot be located, read or decoded.
type LoadError struct {
	Resource string
	Op       string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %s: %v", e.Resource, e.Op, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Read opens name in fsys and returns its decoded lines.
func Read(fsys fs.FS, name string) ([]string, error) {
	if fsys == nil {
		return nil, &LoadError{Resource: name, Op: OpOpen, Err: errors.New("no filesystem given")}
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, &LoadError{Resource: name, Op: OpOpen, Err: errors.Wrap(err, "open resource")}
	}
	defer f.Close()

	return Parse(f, name)
}

// ReadFile reads a table from a path on the local filesystem.
func ReadFile(path string) ([]string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &LoadError{Resource: path, Op: OpOpen, Err: errors.Wrap(err, "resolve path")}
	}
	lines, err := Read(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
	if le, ok := err.(*LoadError); ok {
		le.Resource = path
	}
	return lines, err
}

// Parse reads r to the end and returns its decoded lines. name is only
// used for error reporting.
func Parse(r io.Reader, name string) ([]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Resource: name, Op: OpRead, Err: errors.Wrap(err, "read resource")}
	}
	if !utf8.Valid(raw) {
		return nil, &LoadError{Resource: name, Op: OpDecode, Err: ErrInvalidUTF8}
	}
	// Strips a leading byte order mark.
	text, err := unicode.UTF8BOM.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, &LoadError{Resource: name, Op: OpDecode, Err: errors.Wrap(err, "decode resource")}
	}
	return SplitLines(string(text)), nil
}

// SplitLines splits s on "\n", "\r\n" and "\r". A trailing terminator
// does not produce an empty final line.
func SplitLines(s string) []string {
	var lines []string
	for len(s) > 0 {
		i := strings.IndexAny(s, "\r\n")
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i])
		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			i++
		}
		s = s[i+1:]
	}
	return lines
}

// Fields splits a line on tabs and drops trailing empty fields.
// A line without any tab is a single field, even when empty.
func Fields(line string) []string {
	if !strings.Contains(line, "\t") {
		return []string{line}
	}
	fields := strings.Split(line, "\t")
	n := len(fields)
	for n > 0 && fields[n-1] == "" {
		n--
	}
	return fields[:n]
}

// NopLogger returns a logger that discards everything.
func NopLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}
