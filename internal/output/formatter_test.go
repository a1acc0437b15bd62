package output

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestResultFormatText(t *testing.T) {
	result := &Result{
		Table: "country",
		Kind:  "name",
		Query: "can",
		Value: "Canada",
		Found: true,
	}

	text := result.FormatText()

	parts := strings.Split(text, "\t")
	if len(parts) != 2 {
		t.Fatalf("Expected 2 tab-separated parts, got %d", len(parts))
	}
	if parts[0] != "can" {
		t.Errorf("Query = %s, expected can", parts[0])
	}
	if parts[1] != "Canada" {
		t.Errorf("Value = %s, expected Canada", parts[1])
	}
}

func TestResultFormatTextMiss(t *testing.T) {
	result := &Result{Kind: "name", Query: "xx"}
	if text := result.FormatText(); text != "xx\t-" {
		t.Errorf("FormatText() = %q, expected %q", text, "xx\t-")
	}

	result.Message = "Country not found for code: xx"
	if text := result.FormatText(); !strings.HasSuffix(text, "\tCountry not found for code: xx") {
		t.Errorf("FormatText() = %q, expected message", text)
	}
}

func TestResultFormatJSON(t *testing.T) {
	result := &Result{
		Table: "language",
		Kind:  "code",
		Query: "French",
		Value: "fr",
		Found: true,
	}

	jsonStr, err := result.FormatJSON()
	if err != nil {
		t.Fatalf("FormatJSON failed: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	if parsed["table"] != "language" {
		t.Errorf("table = %v, expected language", parsed["table"])
	}
	if parsed["value"] != "fr" {
		t.Errorf("value = %v, expected fr", parsed["value"])
	}
	if parsed["found"] != true {
		t.Errorf("found = %v, expected true", parsed["found"])
	}
	if _, ok := parsed["message"]; ok {
		t.Error("message should be omitted when empty")
	}
}

func TestBatchFormatText(t *testing.T) {
	batch := &Batch{
		Results: []*Result{
			{Query: "CA", Value: "Canada", Found: true},
			{Query: "FR", Value: "France", Found: true},
		},
	}

	lines := strings.Split(batch.FormatText(), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "CA\tCanada" {
		t.Errorf("First line = %q", lines[0])
	}
	if lines[1] != "FR\tFrance" {
		t.Errorf("Second line = %q", lines[1])
	}
}

func TestBatchFormatJSON(t *testing.T) {
	batch := &Batch{
		Results: []*Result{
			{Query: "CA", Value: "Canada", Found: true},
		},
	}

	jsonStr, err := batch.FormatJSON()
	if err != nil {
		t.Fatalf("FormatJSON failed: %v", err)
	}

	var parsed []map[string]interface{}
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		t.Fatalf("Invalid JSON array: %v", err)
	}
	if len(parsed) != 1 {
		t.Errorf("Expected 1 result, got %d", len(parsed))
	}

	empty, err := (&Batch{}).FormatJSON()
	if err != nil {
		t.Fatalf("FormatJSON failed: %v", err)
	}
	if empty != "[]" {
		t.Errorf("Empty batch = %q, expected []", empty)
	}
}

func TestCountFormat(t *testing.T) {
	c := &Count{Table: "country", Count: 249}
	if c.FormatText() != "249" {
		t.Errorf("FormatText() = %q, expected 249", c.FormatText())
	}

	jsonStr, err := c.FormatJSON()
	if err != nil {
		t.Fatalf("FormatJSON failed: %v", err)
	}
	if !strings.Contains(jsonStr, `"count": 249`) {
		t.Errorf("FormatJSON() = %s, expected count field", jsonStr)
	}
}
