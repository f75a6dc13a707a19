// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset loads CSV data files into gg tables.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// Read reads a CSV file with a header row from r.
//
// A column whose cells all parse as floating point numbers (ignoring
// empty cells) becomes a []float64 column, with empty cells mapped to
// NaN. All other columns, and the columns named by text, are
// []string. Naming a column in text keeps labels such as "304" as
// written.
func Read(r io.Reader, text ...string) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	header, rows := rows[0], rows[1:]
	seen := make(map[string]bool)
	for i, name := range header {
		name = strings.TrimSpace(name)
		if seen[name] {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = true
		header[i] = name
	}

	// Start from an all-string table and then coerce whatever
	// columns we can. We don't let gg coerce because it produces
	// integer columns and doesn't understand missing values.
	t := table.TableFromStrings(header, rows, false)
	keep := make(map[string]bool)
	for _, col := range text {
		if !seen[col] {
			return nil, fmt.Errorf("no column %q", col)
		}
		keep[col] = true
	}
	b := table.NewBuilder(t)
	for _, col := range header {
		if keep[col] {
			continue
		}
		if fs, ok := parseFloats(t.MustColumn(col).([]string)); ok {
			b.Add(col, fs)
		}
	}
	return b.Done(), nil
}

func parseFloats(col []string) ([]float64, bool) {
	out := make([]float64, len(col))
	numeric := false
	for i, s := range col {
		s = strings.TrimSpace(s)
		if s == "" {
			out[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
		numeric = true
	}
	return out, numeric
}

// ReadFile reads the CSV file at path. text is as for Read.
func ReadFile(path string, text ...string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Read(f, text...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ReadDir reads every *.csv file in dir, in name order, and
// concatenates them into a single table. Each row gets a "campaign"
// column giving the index of its file and a "file" column giving the
// file's base name. All files must have the same columns.
func ReadDir(dir string) (*table.Table, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no CSV files in %s", dir)
	}
	sort.Strings(paths)

	var tabs []table.Grouping
	var cols []string
	for i, path := range paths {
		t, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			cols = t.Columns()
		} else if !sameColumns(cols, t.Columns()) {
			return nil, fmt.Errorf("%s: columns %q differ from %q", path, t.Columns(), cols)
		}
		t = table.NewBuilder(t).
			AddConst("campaign", i).
			AddConst("file", filepath.Base(path)).
			Done()
		tabs = append(tabs, t)
	}
	return flatten(table.Concat(tabs...)), nil
}

func sameColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// flatten converts g into a single *table.Table. Constant columns
// are expanded so every column is a plain slice.
func flatten(g table.Grouping) *table.Table {
	t := table.Flatten(g)
	b := table.NewBuilder(nil)
	for _, col := range t.Columns() {
		b.Add(col, t.MustColumn(col))
	}
	return b.Done()
}

// Floats returns column col of t as a []float64.
func Floats(t *table.Table, col string) ([]float64, error) {
	switch c := t.Column(col).(type) {
	case nil:
		return nil, fmt.Errorf("no column %q", col)
	case []float64:
		return c, nil
	case []int:
		out := make([]float64, len(c))
		for i, v := range c {
			out[i] = float64(v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("column %q is %T, not numeric", col, c)
	}
}

// Strings returns column col of t as a []string.
func Strings(t *table.Table, col string) ([]string, error) {
	switch c := t.Column(col).(type) {
	case nil:
		return nil, fmt.Errorf("no column %q", col)
	case []string:
		return c, nil
	default:
		return nil, fmt.Errorf("column %q is %T, not string", col, c)
	}
}

// Matrix returns the named numeric columns of t as a row-major
// matrix, with one row per table row.
func Matrix(t *table.Table, cols ...string) ([][]float64, error) {
	y := make([][]float64, t.Len())
	for i := range y {
		y[i] = make([]float64, len(cols))
	}
	for j, col := range cols {
		xs, err := Floats(t, col)
		if err != nil {
			return nil, err
		}
		for i, x := range xs {
			y[i][j] = x
		}
	}
	return y, nil
}

// Transpose swaps the rows and columns of t. The values of keyCol
// become the names of the new columns, and the names of the other
// columns of t become the values of a new key column named keyCol.
// If the names of the old columns are all numeric, the new key
// column is []float64.
//
// For example, a table with a "Year" column listing energy sources
// and one column per year becomes a table with one row per year and
// one column per energy source.
func Transpose(t *table.Table, keyCol string) (*table.Table, error) {
	keys, err := Strings(t, keyCol)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, col := range t.Columns() {
		if col != keyCol {
			names = append(names, col)
		}
	}

	b := table.NewBuilder(nil)
	if fs, ok := parseFloats(names); ok {
		b.Add(keyCol, fs)
	} else {
		b.Add(keyCol, names)
	}
	vals := make([][]float64, len(names))
	for j, name := range names {
		if vals[j], err = Floats(t, name); err != nil {
			return nil, err
		}
	}
	for i, key := range keys {
		col := make([]float64, len(names))
		for j := range names {
			col[j] = vals[j][i]
		}
		b.Add(key, col)
	}
	return b.Done(), nil
}
