package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/datagrid"
)

const carsCSV = `name,price
Infernus,150000
Faggio,4000
`

func testRequest(t *testing.T, csv string) layoutRequest {
	t.Helper()
	data, err := readCSV(strings.NewReader(csv))
	require.NoError(t, err)
	return layoutRequest{
		Columns: data.columns(),
		Data:    data,
		Style:   datagrid.TextCellStyle(),
		Width:   40,
	}
}

func TestReadCSV(t *testing.T) {
	d, err := readCSV(strings.NewReader(carsCSV))
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "price"}, d.header)
	assert.Len(t, d.rows, 2)
	assert.Equal(t, "Faggio", d.value(1, "name"))
	assert.Equal(t, "", d.value(1, "missing"))
	assert.Equal(t, "", d.value(5, "name"))
}

func TestReadCSV_Errors(t *testing.T) {
	_, err := readCSV(strings.NewReader(""))
	assert.Error(t, err)

	_, err = readCSV(strings.NewReader("a,a\n1,2\n"))
	assert.ErrorContains(t, err, "duplicate column")
}

func TestDatasetSort(t *testing.T) {
	d, err := readCSV(strings.NewReader("name,price\nb,9\na,10\nc,100\n"))
	require.NoError(t, err)

	require.NoError(t, d.sort("price", datagrid.SortAscending))
	assert.Equal(t, []string{"b", "a", "c"}, []string{d.value(0, "name"), d.value(1, "name"), d.value(2, "name")})

	require.NoError(t, d.sort("name", datagrid.SortDescending))
	assert.Equal(t, "c", d.value(0, "name"))

	assert.ErrorIs(t, d.sort("nope", datagrid.SortAscending), datagrid.ErrUnknownColumn)
}

func TestRunLayout_MeasuresInCharacterCells(t *testing.T) {
	req := testRequest(t, carsCSV)

	res, err := runLayout(req)
	require.NoError(t, err)

	// "Infernus" plus one cell of padding on each side; "price" plus the
	// padding and the sort arrow's reserve.
	assert.Equal(t, []float32{10, 9}, res.Snapshot.Widths)
	assert.Equal(t, float32(19), res.Snapshot.Width)
	assert.Equal(t, []float32{1, 1}, res.Snapshot.Heights)
	assert.Equal(t, float32(2), res.Snapshot.Height)

	// Both columns grow equally into the 40 characters available.
	assert.Equal(t, map[string]float32{"name": 20.5, "price": 19.5}, res.Drawn)
	assert.Equal(t, 2, res.Commits)
}

func TestRunLayout_FreshGridPerRun(t *testing.T) {
	first, err := runLayout(testRequest(t, carsCSV))
	require.NoError(t, err)

	second, err := runLayout(testRequest(t, "name,price\nStretch limousine,65000\n"))
	require.NoError(t, err)

	assert.Equal(t, float32(10), first.Snapshot.Widths[0])
	assert.Equal(t, float32(19), second.Snapshot.Widths[0])
	assert.Len(t, second.Snapshot.Heights, 1)
}

func TestResizeLayout(t *testing.T) {
	req := testRequest(t, carsCSV)

	report, err := resizeLayout(req, datagrid.DefaultConfig(), "name", 30)
	require.NoError(t, err)

	assert.Equal(t, []resizedColumn{{Key: "name", Width: 30}, {Key: "price", Width: 19.5}}, report.Columns)
	assert.Equal(t, float32(49.5), report.Total)
	require.Len(t, report.Config.Columns, 2)
	require.NotNil(t, report.Config.Columns[1].FlexGrow)
	assert.Equal(t, 0, *report.Config.Columns[1].FlexGrow)
}

func TestResizeLayout_UnknownColumn(t *testing.T) {
	_, err := resizeLayout(testRequest(t, carsCSV), datagrid.DefaultConfig(), "speed", 10)
	assert.ErrorIs(t, err, datagrid.ErrUnknownColumn)
}

func TestParseFlags(t *testing.T) {
	f, err := parseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = parseFormat("xml")
	assert.ErrorContains(t, err, "unsupported format")

	dir, err := parseSortDirection("asc")
	require.NoError(t, err)
	assert.Equal(t, datagrid.SortAscending, dir)

	_, err = parseSortDirection("up")
	assert.Error(t, err)
}

func TestMeasureCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cars.csv")
	require.NoError(t, os.WriteFile(path, []byte(carsCSV), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"measure", "--data", path, "--width", "40", "--format", "json", "--sort", "price", "--dir", "ASC"})
	require.NoError(t, rootCmd.Execute())

	var report layoutReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	require.Len(t, report.Columns, 2)
	assert.Equal(t, "name", report.Columns[0].Key)
	assert.Equal(t, float32(10), report.Columns[0].Measured)
	assert.Equal(t, "price", report.SortBy)
	assert.Equal(t, "ASC", report.SortDirection)
	assert.Equal(t, float32(19), report.MeasuredWidth)
}
