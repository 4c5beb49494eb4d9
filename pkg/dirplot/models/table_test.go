package models

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaneSliceIndex(t *testing.T) {
	tests := []struct {
		rows     int
		expected int
	}{
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 2},
		{5, 2},
	}

	for _, tt := range tests {
		rows := make([][]float64, tt.rows)
		for i := range rows {
			rows[i] = []float64{float64(i), float64(i) + 0.5}
		}

		table, err := NewDirectivityTable("t.csv", rows)
		require.NoError(t, err)

		slice := table.PlaneSlice()
		assert.Equal(t, tt.expected, slice.Index, "R=%d", tt.rows)
		assert.Equal(t, rows[tt.expected], slice.Values, "R=%d", tt.rows)
	}
}

func TestPlaneSliceIsCopy(t *testing.T) {
	table, err := NewDirectivityTable("t.csv", [][]float64{{1, 2}})
	require.NoError(t, err)

	slice := table.PlaneSlice()
	slice.Values[0] = 99

	assert.Equal(t, []float64{1, 2}, table.Row(0))
}

func TestNewDirectivityTableRejectsBadShapes(t *testing.T) {
	_, err := NewDirectivityTable("empty.csv", nil)
	assert.ErrorIs(t, err, ErrEmptyTable)

	_, err = NewDirectivityTable("nocols.csv", [][]float64{{}})
	assert.ErrorIs(t, err, ErrEmptyTable)

	_, err = NewDirectivityTable("ragged.csv", [][]float64{{1, 2}, {3}})
	assert.Error(t, err)
}

func TestAngularSamples(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)

	got := NewAngularSamples(4)
	want := AngularSamples{0, 2 * math.Pi / 3, 4 * math.Pi / 3, 2 * math.Pi}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("NewAngularSamples(4) mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, AngularSamples{0}, NewAngularSamples(1))
	assert.Empty(t, NewAngularSamples(0))
}

func TestAngularSamplesUniform(t *testing.T) {
	for _, n := range []int{2, 3, 36, 361} {
		got := NewAngularSamples(n)
		require.Len(t, got, n)
		assert.Equal(t, 0.0, got[0])
		assert.InDelta(t, 2*math.Pi, got[n-1], 1e-12)

		step := 2 * math.Pi / float64(n-1)
		for i := 1; i < n; i++ {
			assert.GreaterOrEqual(t, got[i], got[i-1])
			assert.InDelta(t, step, got[i]-got[i-1], 1e-9, "n=%d i=%d", n, i)
		}
	}
}

func TestTableAngularSamplesMatchColumns(t *testing.T) {
	table, err := NewDirectivityTable("a.csv", [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	})
	require.NoError(t, err)

	_, c := table.Dims()
	assert.Len(t, table.AngularSamples(), c)
	assert.Equal(t, c, table.PlaneSlice().Len())
}
