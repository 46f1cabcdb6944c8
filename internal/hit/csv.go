package hit

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"contigmap/internal/input"
)

// FieldError reports a hit row that is missing a required field or carries
// a value that does not parse.
type FieldError struct {
	Source string
	Line   int
	Field  string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %v", e.Source, e.Line, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Source, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// ErrMissing marks an absent column or an empty required value.
var ErrMissing = errors.New("missing required field")

// LoadCSV reads hits from path ("-" for stdin, gzip accepted).
func LoadCSV(path string) ([]Hit, error) {
	rc, err := input.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return ReadCSV(rc, path)
}

// ReadCSV parses a delimited hit table whose first row names the columns.
// Rows are returned in input order. source is only used in error messages.
func ReadCSV(r io.Reader, source string) ([]Hit, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &FieldError{Source: source, Field: "header", Err: ErrMissing}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range Required {
		if _, ok := col[name]; !ok {
			return nil, &FieldError{Source: source, Line: 1, Field: name, Err: ErrMissing}
		}
	}

	var hits []Hit
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		line, _ := cr.FieldPos(0)
		row := rowReader{rec: rec, col: col, source: source, line: line}

		var h Hit
		h.ContigNum = row.requiredInt(ColContigNum)
		h.RefStart = row.requiredInt(ColRefStart)
		h.RefEnd = row.requiredInt(ColRefEnd)
		h.RefName = row.str(ColRefName)
		h.Score = row.optionalInt(ColScore)
		h.Match = row.optionalFloat(ColMatch)
		h.QueryStart = row.optionalInt(ColQueryStart)
		h.QueryEnd = row.optionalInt(ColQueryEnd)
		if row.err != nil {
			return nil, row.err
		}
		hits = append(hits, h)
	}
	return hits, nil
}

// rowReader keeps the first error seen while pulling fields from one record.
type rowReader struct {
	rec    []string
	col    map[string]int
	source string
	line   int
	err    error
}

func (r *rowReader) str(name string) string {
	i, ok := r.col[name]
	if !ok || i >= len(r.rec) {
		return ""
	}
	return strings.TrimSpace(r.rec[i])
}

func (r *rowReader) fail(name string, err error) {
	if r.err == nil {
		r.err = &FieldError{Source: r.source, Line: r.line, Field: name, Err: err}
	}
}

func (r *rowReader) requiredInt(name string) int {
	s := r.str(name)
	if s == "" {
		r.fail(name, ErrMissing)
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		r.fail(name, err)
	}
	return v
}

func (r *rowReader) optionalInt(name string) int {
	s := r.str(name)
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		r.fail(name, err)
	}
	return v
}

func (r *rowReader) optionalFloat(name string) float64 {
	s := r.str(name)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		r.fail(name, err)
	}
	return v
}
