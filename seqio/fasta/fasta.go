// Package fasta reads FASTA formatted sequence data. Parsing is
// deliberately conservative: headers start with '>', sequence lines are
// concatenated, everything else is passed through untouched.
package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Record is a single FASTA record.
type Record struct {
	Header   string
	Sequence string
}

// ErrNoRecords is returned when the input contains no FASTA records.
var ErrNoRecords = errors.New("fasta: no records")

// Read parses all records from r.
func Read(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)

	var records []Record
	var current *Record
	var seq strings.Builder

	flush := func() {
		if current == nil {
			return
		}
		current.Sequence = seq.String()
		records = append(records, *current)
		current = nil
		seq.Reset()
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			flush()
			current = &Record{Header: strings.TrimSpace(line[1:])}
			continue
		}
		if current == nil {
			// Headerless input: treat the whole body as one record.
			current = &Record{}
		}
		seq.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fasta: read: %w", err)
	}
	flush()

	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

// ReadOne parses the first record from r.
func ReadOne(r io.Reader) (Record, error) {
	records, err := Read(r)
	if err != nil {
		return Record{}, err
	}
	return records[0], nil
}
