package csvtable

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "comma_separator", input: "1,5", want: 1.5},
		{name: "dot_separator", input: "1.5", want: 1.5},
		{name: "integer", input: "10", want: 10},
		{name: "negative_exponent", input: "-2,5e3", want: -2500},
		{name: "surrounding_space", input: "  0,3 ", want: 0.3},
		{name: "leading_separator", input: ",5", want: 0.5},
		{name: "mixed_separators", input: "1,5.0", wantErr: true},
		{name: "grouped_thousands", input: "1,234,5", wantErr: true},
		{name: "two_dots", input: "1.2.3", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
		{name: "text", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDecimal(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedDecimal)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestParseDecimal_CommaMatchesDot(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := rapid.Float64Range(-1e9, 1e9).Draw(t, "value")
		dotted := strconv.FormatFloat(f, 'f', -1, 64)
		commaed := strings.Replace(dotted, ".", ",", 1)

		fromDot, err := ParseDecimal(dotted)
		require.NoError(t, err)
		fromComma, err := ParseDecimal(commaed)
		require.NoError(t, err)

		assert.Equal(t, f, fromDot)
		assert.Equal(t, fromDot, fromComma)
	})
}

func TestRead_ParsesHeaderAndRows(t *testing.T) {
	table, err := Read(strings.NewReader("rho z;Cu Ka\n0,0;10,0\n1,0;5,0\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"rho z", "Cu Ka"}, table.Header)
	assert.Equal(t, [][]string{{"0,0", "10,0"}, {"1,0", "5,0"}}, table.Rows)
	assert.Equal(t, 0, table.Column("rho z"))
	assert.Equal(t, 1, table.Column("Cu Ka"))
	assert.Equal(t, -1, table.Column("Fe Ka"))

	v, err := table.Float(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestRead_HeaderOnly(t *testing.T) {
	table, err := Read(strings.NewReader("Cu Ka;Cu Kb\n"))
	require.NoError(t, err)
	assert.Len(t, table.Header, 2)
	assert.Empty(t, table.Rows)
}

func TestRead_EmptyInput(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestRead_StripsByteOrderMark(t *testing.T) {
	table, err := Read(strings.NewReader("\ufeffrho z;Cu Ka\n0;1\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, table.Column("rho z"))
}

func TestRead_RejectsMisalignedRows(t *testing.T) {
	_, err := Read(strings.NewReader("rho z;Cu Ka\n0,0;10,0;3,0\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, csv.ErrFieldCount)
}

func TestFloat_ErrorNamesCell(t *testing.T) {
	table, err := Read(strings.NewReader("rho z;Cu Ka\n0,0;oops\n"))
	require.NoError(t, err)

	_, err = table.Float(0, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `row 1, column "Cu Ka"`)
	assert.ErrorIs(t, err, ErrMalformedDecimal)
}

func TestReadFile_MissingFile(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
