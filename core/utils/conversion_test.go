package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"Int", 7, 7},
		{"Int64", int64(12), 12},
		{"Float", float64(3), 3},
		{"String", "42", 42},
		{"Bytes", []byte("5"), 5},
		{"Garbage", "abc", 0},
		{"Nil", nil, 0},
		{"PaddedString", " 7 ", 7},
		{"FloatString", "3.0", 3},
		{"JSONNumber", json.Number("9"), 9},
		{"NaN", "NaN", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.in))
		})
	}
}

func TestToInt64_LargeIDs(t *testing.T) {
	assert.Equal(t, int64(1)<<40, ToInt64(int64(1)<<40))
	assert.Equal(t, int64(1099511627776), ToInt64("1099511627776"))
	assert.Equal(t, int64(5), ToInt64(float32(5.9)))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(" true "))
	assert.True(t, ToBool(json.Number("1")))
	assert.True(t, ToBool(true))
	assert.True(t, ToBool(1))
	assert.True(t, ToBool(float64(1)))
	assert.True(t, ToBool("1"))
	assert.True(t, ToBool("TRUE"))
	assert.True(t, ToBool([]byte("true")))
	assert.False(t, ToBool(0))
	assert.False(t, ToBool("yes"))
	assert.False(t, ToBool(nil))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "front", ToString("front"))
	assert.Equal(t, "12", ToString(12))
	assert.Equal(t, "b", ToString([]byte("b")))
	assert.Equal(t, "", ToString(nil))
}
