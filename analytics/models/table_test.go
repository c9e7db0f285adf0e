package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Float(t *testing.T) {
	table := Table{
		Columns: []string{"v"},
		Rows:    [][]interface{}{{int64(4)}, {3.5}, {[]byte("2")}, {" 1.25 "}, {nil}, {"n/a"}, {true}},
	}

	for row, want := range []float64{4, 3.5, 2, 1.25} {
		got, ok, err := table.Float(row, 0)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok, err := table.Float(4, 0)
	assert.NoError(t, err)
	assert.False(t, ok)

	_, _, err = table.Float(5, 0)
	assert.Error(t, err)
	_, _, err = table.Float(6, 0)
	assert.Error(t, err)
}

func TestTable_ColumnIndex(t *testing.T) {
	table := NewParticipantTable(nil)

	idx, err := table.ColumnIndex("GENERATION_STATUS")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = table.ColumnIndex(ColEventType)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ColHouseholdIncomeBracket)
	assert.True(t, table.IsEmpty())
}

func TestRunLog_UnitAndCount(t *testing.T) {
	runLog := RunLog{Units: []UnitResult{
		{Name: "a", Status: UnitDone},
		{Name: "b", Status: UnitSkipped},
		{Name: "c", Status: UnitDone},
	}}

	assert.Equal(t, 2, runLog.Count(UnitDone))
	assert.Equal(t, 0, runLog.Count(UnitFailed))

	u, ok := runLog.Unit("b")
	require.True(t, ok)
	assert.Equal(t, UnitSkipped, u.Status)
	_, ok = runLog.Unit("z")
	assert.False(t, ok)
}
