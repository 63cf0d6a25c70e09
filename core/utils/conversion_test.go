package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInt64(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int64
	}{
		{"Int", 7, 7},
		{"Int64", int64(9), 9},
		{"Float", 3.9, 3},
		{"String", " 42 ", 42},
		{"Bytes", []byte("5"), 5},
		{"Garbage", "abc", 0},
		{"Nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt64(tt.in))
		})
	}
}

func TestParseIDList(t *testing.T) {
	ids, err := ParseIDList("2, 3,,4")
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4}, ids)

	ids, err = ParseIDList("  ")
	require.NoError(t, err)
	assert.Nil(t, ids)

	_, err = ParseIDList("1,x")
	assert.Error(t, err)
}

func TestUniqueIDs(t *testing.T) {
	assert.Equal(t, []int64{3, 1, 2}, UniqueIDs([]int64{3, 1, 3, 2, 1}))
	assert.Empty(t, UniqueIDs(nil))
}
