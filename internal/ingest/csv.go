// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

// Package ingest reads the tweet dataset from a delimited file.
//
// The input must carry the columns "date", "tweet", and "country"; the
// optional "source" and "target" columns enable the interaction network
// variant. Timestamps are parsed with their embedded offset and normalized
// to naive UTC before anything downstream sees them.
//
// Malformed rows surface as *ParseError. The load policy decides what
// happens next: PolicyAbort (the default, matching the reference behavior)
// fails the whole load on the first bad row; PolicyDrop skips the row and
// counts it.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/tomtom215/sentigraph/internal/logging"
	"github.com/tomtom215/sentigraph/internal/models"
)

// Load policies for malformed rows.
const (
	PolicyAbort = "abort"
	PolicyDrop  = "drop"
)

// Required and optional column names.
const (
	colDate    = "date"
	colTweet   = "tweet"
	colCountry = "country"
	colSource  = "source"
	colTarget  = "target"
)

// timestampLayouts are tried in order. Offset-bearing layouts come first;
// the trailing naive layouts accept datasets that were exported without an
// offset.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseError reports an unparseable field in one input row. Line is
// 1-based and counts the header.
type ParseError struct {
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: column %q: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrMissingColumn indicates a required column is absent from the header.
var ErrMissingColumn = errors.New("required column missing")

// Result summarizes a completed load.
type Result struct {
	Records []models.RawTweet

	// Dropped is the number of rows skipped under PolicyDrop.
	Dropped int

	// HasEdgeColumns is true when the header carried both source and
	// target, i.e. the network graph variant is available.
	HasEdgeColumns bool
}

// Loader reads tweet datasets. The zero value uses PolicyAbort.
type Loader struct {
	// Policy is PolicyAbort or PolicyDrop.
	Policy string
}

// LoadFile opens path and loads it. See Load.
func (l *Loader) LoadFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logging.Warn().Err(cerr).Str("path", path).Msg("Failed to close dataset file")
		}
	}()

	return l.Load(f)
}

// Load reads a complete dataset from r. The header row is mandatory and
// column order is free; unknown columns are ignored. Returns the raw
// records in file order.
func (l *Loader) Load(r io.Reader) (*Result, error) {
	policy := l.Policy
	if policy == "" {
		policy = PolicyAbort
	}
	if policy != PolicyAbort && policy != PolicyDrop {
		return nil, fmt.Errorf("unknown parse error policy %q", policy)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx, hasEdges, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	result := &Result{HasEdgeColumns: hasEdges}
	line := 1

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			perr := &ParseError{Line: line, Column: "", Err: err}
			if policy == PolicyDrop {
				result.Dropped++
				logging.Warn().Int("line", line).Err(err).Msg("Dropped malformed row")
				continue
			}
			return nil, perr
		}

		record, perr := parseRow(row, idx, hasEdges, line)
		if perr != nil {
			if policy == PolicyDrop {
				result.Dropped++
				logging.Warn().Int("line", perr.Line).Str("column", perr.Column).Err(perr.Err).Msg("Dropped malformed row")
				continue
			}
			return nil, perr
		}

		result.Records = append(result.Records, record)
	}

	return result, nil
}

// columnIndex maps the known columns to their positions in the header.
// Optional columns are -1 when absent.
type columnIndex struct {
	date    int
	tweet   int
	country int
	source  int
	target  int
}

func indexColumns(header []string) (columnIndex, bool, error) {
	idx := columnIndex{date: -1, tweet: -1, country: -1, source: -1, target: -1}

	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case colDate:
			idx.date = i
		case colTweet:
			idx.tweet = i
		case colCountry:
			idx.country = i
		case colSource:
			idx.source = i
		case colTarget:
			idx.target = i
		}
	}

	for name, pos := range map[string]int{colDate: idx.date, colTweet: idx.tweet, colCountry: idx.country} {
		if pos < 0 {
			return idx, false, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	hasEdges := idx.source >= 0 && idx.target >= 0
	return idx, hasEdges, nil
}

func parseRow(row []string, idx columnIndex, hasEdges bool, line int) (models.RawTweet, *ParseError) {
	// A truncated row must not slip through as empty fields: every
	// required column has to be physically present, so the abort/drop
	// policy governs short rows like any other malformed row. Missing
	// source/target cells stay legal; empty means no edge.
	for _, col := range []struct {
		name string
		pos  int
	}{
		{colDate, idx.date},
		{colTweet, idx.tweet},
		{colCountry, idx.country},
	} {
		if col.pos >= len(row) {
			return models.RawTweet{}, &ParseError{
				Line:   line,
				Column: col.name,
				Err:    fmt.Errorf("row has %d fields, column is at index %d", len(row), col.pos),
			}
		}
	}

	get := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rawDate := get(idx.date)
	ts, err := ParseTimestamp(rawDate)
	if err != nil {
		return models.RawTweet{}, &ParseError{Line: line, Column: colDate, Err: err}
	}

	record := models.RawTweet{
		CreatedAt: ts,
		Body:      get(idx.tweet),
		Country:   get(idx.country),
	}
	if hasEdges {
		record.Source = get(idx.source)
		record.Target = get(idx.target)
	}

	return record, nil
}

// ParseTimestamp parses a timestamp with an optional embedded offset and
// normalizes it to naive UTC: the offset is applied, then discarded. A
// timestamp that matches none of the accepted layouts is an error; the
// caller's policy decides whether that aborts the load.
func ParseTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty timestamp")
	}

	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unparseable timestamp %q", value)
}
