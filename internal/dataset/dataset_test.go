// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	tab, err := Read(strings.NewReader(`sample, name,x3: temperature
1,a,200
2,b,
3,c,1e2
`))
	require.NoError(t, err)
	require.Equal(t, []string{"sample", "name", "x3: temperature"}, tab.Columns())
	require.Equal(t, 3, tab.Len())

	samples, err := Floats(tab, "sample")
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, samples)

	temps, err := Floats(tab, "x3: temperature")
	require.NoError(t, err)
	require.Equal(t, 200.0, temps[0])
	require.True(t, math.IsNaN(temps[1]))
	require.Equal(t, 100.0, temps[2])

	names, err := Strings(tab, "name")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, names)

	_, err = Floats(tab, "name")
	require.Error(t, err)
	_, err = Floats(tab, "missing")
	require.Error(t, err)
	_, err = Strings(tab, "sample")
	require.Error(t, err)
}

func TestReadText(t *testing.T) {
	const data = "grade,year\n304,1924\n316,1950\n"
	tab, err := Read(strings.NewReader(data), "grade")
	require.NoError(t, err)
	grades, err := Strings(tab, "grade")
	require.NoError(t, err)
	require.Equal(t, []string{"304", "316"}, grades)
	years, err := Floats(tab, "year")
	require.NoError(t, err)
	require.Equal(t, []float64{1924, 1950}, years)

	// Without naming it, the grade column is numeric.
	tab, err = Read(strings.NewReader(data))
	require.NoError(t, err)
	_, err = Strings(tab, "grade")
	require.Error(t, err)

	_, err = Read(strings.NewReader(data), "alloy")
	require.ErrorContains(t, err, `"alloy"`)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	require.Error(t, err)
	_, err = Read(strings.NewReader("a,a\n1,2\n"))
	require.Error(t, err)
	_, err = Read(strings.NewReader("a,b\n1\n"))
	require.Error(t, err)
}

func TestReadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) {
		t.Helper()
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0666))
	}
	write("b.csv", "sample,y\n1,10\n2,20\n")
	write("a.csv", "sample,y\n1,5\n")
	write("notes.txt", "ignored")

	tab, err := ReadDir(dir)
	require.NoError(t, err)
	require.Equal(t, 3, tab.Len())
	campaign, err := Floats(tab, "campaign")
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 1}, campaign)
	files, err := Strings(tab, "file")
	require.NoError(t, err)
	require.Equal(t, []string{"a.csv", "b.csv", "b.csv"}, files)
	ys, err := Floats(tab, "y")
	require.NoError(t, err)
	require.Equal(t, []float64{5, 10, 20}, ys)

	write("c.csv", "sample,z\n1,1\n")
	_, err = ReadDir(dir)
	require.Error(t, err)

	_, err = ReadDir(t.TempDir())
	require.Error(t, err)
}

func TestMatrix(t *testing.T) {
	tab, err := Read(strings.NewReader("a,b\n1,2\n3,4\n"))
	require.NoError(t, err)
	y, err := Matrix(tab, "b", "a")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 1}, {4, 3}}, y)
}

func TestTranspose(t *testing.T) {
	tab, err := Read(strings.NewReader(`Year,2000,2001,2002
Oil,1,2,3
Gas,4,5,6
`))
	require.NoError(t, err)
	tt, err := Transpose(tab, "Year")
	require.NoError(t, err)
	require.Equal(t, []string{"Year", "Oil", "Gas"}, tt.Columns())
	years, err := Floats(tt, "Year")
	require.NoError(t, err)
	require.Equal(t, []float64{2000, 2001, 2002}, years)
	gas, err := Floats(tt, "Gas")
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, gas)
}
