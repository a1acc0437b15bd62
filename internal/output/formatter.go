// Package output handles output formatting.
package output

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Missing is printed in place of a value that was not found.
const Missing = "-"

// Result contains the result of a single lookup.
type Result struct {
	Table string `json:"table"`
	Kind  string `json:"kind"`
	Query string `json:"query"`
	Value string `json:"value,omitempty"`
	Found bool   `json:"found"`
	// Message replaces Value in text output on a miss when set.
	Message string `json:"message,omitempty"`
}

// Text returns the value, or the miss message when nothing was found.
func (r *Result) Text() string {
	if r.Found {
		return r.Value
	}
	if r.Message != "" {
		return r.Message
	}
	return Missing
}

// FormatText formats result as tab-separated text.
func (r *Result) FormatText() string {
	return fmt.Sprintf("%s\t%s", r.Query, r.Text())
}

// FormatJSON formats result as JSON.
func (r *Result) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Batch contains results for batch processing.
type Batch struct {
	Results []*Result
}

// FormatText formats batch results as text (one line per result).
func (b *Batch) FormatText() string {
	var lines []string
	for _, r := range b.Results {
		lines = append(lines, r.FormatText())
	}
	return strings.Join(lines, "\n")
}

// FormatJSON formats batch results as JSON array.
func (b *Batch) FormatJSON() (string, error) {
	results := b.Results
	if results == nil {
		results = []*Result{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Count is the result of a count query.
type Count struct {
	Table string `json:"table"`
	Count int    `json:"count"`
}

// FormatText formats the count as a bare number.
func (c *Count) FormatText() string {
	return fmt.Sprintf("%d", c.Count)
}

// FormatJSON formats the count as JSON.
func (c *Count) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
