// Package batch handles batch lookups from stdin.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hightemp/codeconv/internal/output"
)

// Resolver answers a single query.
type Resolver func(query string) *output.Result

// Processor handles batch lookups, one query per input line.
type Processor struct {
	resolve Resolver
}

// NewProcessor creates a new batch processor.
func NewProcessor(resolve Resolver) *Processor {
	return &Processor{resolve: resolve}
}

// ProcessInput reads queries from r and writes results to w. Blank lines
// are skipped; other lines are passed to the resolver as-is.
func (p *Processor) ProcessInput(r io.Reader, w io.Writer, jsonOutput bool) error {
	scanner := bufio.NewScanner(r)

	if jsonOutput {
		// Collect all results for JSON array output
		var results []*output.Result
		for scanner.Scan() {
			query, ok := queryOf(scanner.Text())
			if !ok {
				continue
			}
			results = append(results, p.resolve(query))
		}
		if err := scanner.Err(); err != nil {
			return err
		}

		batch := &output.Batch{Results: results}
		jsonStr, err := batch.FormatJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, jsonStr)
		return err
	}

	// Stream output line by line
	for scanner.Scan() {
		query, ok := queryOf(scanner.Text())
		if !ok {
			continue
		}
		if _, err := fmt.Fprintln(w, p.resolve(query).FormatText()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func queryOf(line string) (string, bool) {
	line = strings.TrimSuffix(line, "\r")
	if strings.TrimSpace(line) == "" {
		return "", false
	}
	return line, true
}
