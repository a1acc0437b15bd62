package languages

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/hightemp/codeconv/internal/resource"
)

const sample = "English\ten\nFrench\tfr\n"

func mustParse(t *testing.T, content string, opts ...Option) *Table {
	t.Helper()
	table, err := Parse(strings.NewReader(content), "test.txt", opts...)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return table
}

func TestName(t *testing.T) {
	table := mustParse(t, sample)

	tests := []struct {
		code     string
		expected string
		found    bool
	}{
		{"en", "English", true},
		{"fr", "French", true},
		{"EN", "", false},
		{" en", "", false},
		{"de", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		name, ok := table.Name(tc.code)
		if name != tc.expected || ok != tc.found {
			t.Errorf("Name(%q) = %q, %v, expected %q, %v", tc.code, name, ok, tc.expected, tc.found)
		}
	}
}

func TestCaseSensitiveCodes(t *testing.T) {
	table := mustParse(t, "English\ten\nENGLISH\tEN\n")

	lower, _ := table.Name("en")
	upper, _ := table.Name("EN")
	if lower == upper {
		t.Errorf("Name(en) and Name(EN) should differ, both %q", lower)
	}
	if table.Count() != 2 {
		t.Errorf("Count() = %d, expected 2", table.Count())
	}
}

func TestCode(t *testing.T) {
	table := mustParse(t, sample)

	tests := []struct {
		name     string
		expected string
		found    bool
	}{
		{"French", "fr", true},
		{"English", "en", true},
		{"french", "", false},
		{" French", "", false},
		{"Klingon", "", false},
	}

	for _, tc := range tests {
		code, ok := table.Code(tc.name)
		if code != tc.expected || ok != tc.found {
			t.Errorf("Code(%q) = %q, %v, expected %q, %v", tc.name, code, ok, tc.expected, tc.found)
		}
	}
}

func TestCodeFirstInTableOrder(t *testing.T) {
	table := mustParse(t, "Norwegian\tno\nNorwegian\tnb\nNorwegian\tnn\n")

	for i := 0; i < 20; i++ {
		if code, _ := table.Code("Norwegian"); code != "no" {
			t.Fatalf("Code(Norwegian) = %q, expected no", code)
		}
	}
	if table.Count() != 3 {
		t.Errorf("Count() = %d, expected 3", table.Count())
	}
}

func TestDuplicateCodes(t *testing.T) {
	table := mustParse(t, "Old\txx\nOther\tyy\nNew\txx\n")

	if name, _ := table.Name("xx"); name != "New" {
		t.Errorf("Name(xx) = %q, expected New", name)
	}
	if _, ok := table.Code("Old"); ok {
		t.Error("Overwritten name should not be found")
	}
	codes := table.Codes()
	if len(codes) != 2 || codes[0] != "xx" || codes[1] != "yy" {
		t.Errorf("Codes() = %q, expected [xx yy]", codes)
	}
}

func TestInvalidLinesSkipped(t *testing.T) {
	content := "English\ten\n" +
		"\n" +
		"NoCode\n" +
		"Too\tmany\tfields\n" +
		" French \t fr \t\n"
	table := mustParse(t, content)

	if table.Count() != 2 {
		t.Errorf("Count() = %d, expected 2", table.Count())
	}
	if name, _ := table.Name("fr"); name != "French" {
		t.Errorf("Name(fr) = %q, expected French", name)
	}
	if _, ok := table.Name("many"); ok {
		t.Error("Three-field line should be skipped")
	}
}

func TestEveryLineIsData(t *testing.T) {
	table := mustParse(t, "Language\tCode\nEnglish\ten\n")
	if name, ok := table.Name("Code"); !ok || name != "Language" {
		t.Errorf("Name(Code) = %q, %v, expected first line loaded", name, ok)
	}
}

func TestLoadMissing(t *testing.T) {
	table, err := Load(fstest.MapFS{}, "missing.txt")
	if table != nil {
		t.Error("Expected no table on failure")
	}

	var le *resource.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("Expected *resource.LoadError, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("Error should wrap fs.ErrNotExist")
	}
}

func TestParseUndecodable(t *testing.T) {
	_, err := Parse(strings.NewReader("Eng\xc3lish\ten\n"), "bad.txt")
	if !errors.Is(err, resource.ErrInvalidUTF8) {
		t.Errorf("Expected ErrInvalidUTF8, got %v", err)
	}
}

func TestDiagnostics(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	mustParse(t, "English\ten\nbogus\n", WithLogger(logger))

	var invalid bool
	for _, e := range hook.AllEntries() {
		if e.Message == "invalid line" {
			invalid = true
			if e.Data["text"] != "bogus" {
				t.Errorf("text = %v, expected bogus", e.Data["text"])
			}
		}
	}
	if !invalid {
		t.Error("Expected a diagnostic for the invalid line")
	}
	if last := hook.LastEntry(); last == nil || last.Data["count"] != 1 {
		t.Errorf("Expected load summary with count 1, got %v", last)
	}
}

func TestDefault(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	if name, _ := table.Name("en"); name != "English" {
		t.Errorf("Name(en) = %q, expected English", name)
	}
	if code, _ := table.Code("Japanese"); code != "ja" {
		t.Errorf("Code(Japanese) = %q, expected ja", code)
	}
	if _, ok := table.Name("EN"); ok {
		t.Error("Name(EN) should be absent")
	}
	if table.Count() < 180 {
		t.Errorf("Expected at least 180 languages, got %d", table.Count())
	}
}
