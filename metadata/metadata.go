// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package metadata implements a table of sample metadata
// read from a TSV file.
//
// Each row of the table is a sample
// identified by the value of an ID column.
package metadata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/js-arias/ebov/outbreak"
)

// DefaultID is the default ID column.
const DefaultID = "accession"

// Common metadata columns.
const (
	Date     = "date"
	Outbreak = "outbreak"
)

// Table is a metadata table.
type Table struct {
	id   string
	cols map[string]int
	rows map[string][]string
}

// Read reads a metadata table from a file.
func Read(name string, idColumns []string) (*Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := ReadTSV(f, idColumns)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %w", name, err)
	}
	return t, nil
}

// ReadTSV reads a metadata table from a TSV file.
//
// The first row of the file is the header.
// The ID column is the first column of idColumns
// found in the header
// (if no idColumns are given,
// DefaultID is used).
// Column names are case insensitive.
// Lines starting with '#' are ignored.
//
// Here is an example file:
//
//	accession	date	outbreak
//	KY426689	2014-10-21	Ebov-2013
//	MH733477	2018-XX-XX	Ebov-2018b
func ReadTSV(r io.Reader, idColumns []string) (*Table, error) {
	if len(idColumns) == 0 {
		idColumns = []string{DefaultID}
	}

	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'
	tab.LazyQuotes = true

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	t := &Table{
		cols: make(map[string]int, len(head)),
		rows: make(map[string][]string),
	}
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		if _, dup := t.cols[h]; dup {
			return nil, fmt.Errorf("header: field %q repeated", h)
		}
		t.cols[h] = i
	}
	for _, id := range idColumns {
		id = strings.ToLower(strings.TrimSpace(id))
		if _, ok := t.cols[id]; ok {
			t.id = id
			break
		}
	}
	if t.id == "" {
		return nil, fmt.Errorf("expecting ID field (one of %q)", idColumns)
	}

	idCol := t.cols[t.id]
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		id := strings.TrimSpace(row[idCol])
		if id == "" {
			return nil, fmt.Errorf("on row %d: field %q: empty value", ln, t.id)
		}
		if _, dup := t.rows[id]; dup {
			return nil, fmt.Errorf("on row %d: field %q: ID %q repeated", ln, t.id, id)
		}
		t.rows[id] = row
	}
	return t, nil
}

// ID returns the name of the ID column.
func (t *Table) ID() string {
	return t.id
}

// IDs returns the sample IDs,
// sorted alphabetically.
func (t *Table) IDs() []string {
	return slices.Sorted(maps.Keys(t.rows))
}

// HasColumn returns true if the table has the indicated column.
func (t *Table) HasColumn(column string) bool {
	_, ok := t.cols[strings.ToLower(column)]
	return ok
}

// Value returns the value of a column for a sample.
func (t *Table) Value(id, column string) string {
	row, ok := t.rows[id]
	if !ok {
		return ""
	}
	i, ok := t.cols[strings.ToLower(column)]
	if !ok {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Column returns the values of a column,
// keyed by sample ID.
func (t *Table) Column(column string) (map[string]string, error) {
	i, ok := t.cols[strings.ToLower(column)]
	if !ok {
		return nil, fmt.Errorf("metadata: column %q not found", column)
	}
	vals := make(map[string]string, len(t.rows))
	for id, row := range t.rows {
		vals[id] = strings.TrimSpace(row[i])
	}
	return vals, nil
}

// Groups returns the samples grouped by the values
// of the indicated column.
// Samples with an empty value are ignored.
func (t *Table) Groups(column string) ([]outbreak.Group, error) {
	vals, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	return outbreak.GroupBy(vals), nil
}

// Years returns the sampling year of each sample,
// taken from the indicated date column
// (in the format "YYYY-MM-DD").
// Samples without a date,
// or with a masked year (starting with 'X'),
// are ignored.
func (t *Table) Years(column string) (map[string]string, error) {
	vals, err := t.Column(column)
	if err != nil {
		return nil, err
	}

	years := make(map[string]string, len(vals))
	for id, date := range vals {
		if date == "" || strings.HasPrefix(date, "X") {
			continue
		}
		y, _, _ := strings.Cut(date, "-")
		years[id] = y
	}
	return years, nil
}
