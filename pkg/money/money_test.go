package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   int64
	}{
		{name: "whole dollars", amount: "50.00", want: 5000},
		{name: "cents", amount: "12.34", want: 1234},
		{name: "rounds half up", amount: "0.005", want: 1},
		{name: "rounds down", amount: "19.994", want: 1999},
		{name: "large amount", amount: "1234567.89", want: 123456789},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToMinorUnits(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestFitsMinorUnits(t *testing.T) {
	assert.True(t, FitsMinorUnits(decimal.RequireFromString("21474836.47")))
	assert.True(t, FitsMinorUnits(decimal.RequireFromString("21474836.474")))
	assert.False(t, FitsMinorUnits(decimal.RequireFromString("21474836.475")))
	assert.False(t, FitsMinorUnits(decimal.RequireFromString("184467440737095516.21")))
}

func TestToMajorUnits(t *testing.T) {
	assert.Equal(t, 50.0, ToMajorUnits(5000))
	assert.Equal(t, 12.34, ToMajorUnits(1234))
	assert.Equal(t, 0.0, ToMajorUnits(0))
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{cents: 0, want: "$0.00"},
		{cents: 5, want: "$0.05"},
		{cents: 60000, want: "$600.00"},
		{cents: 15000, want: "$150.00"},
		{cents: 123456789, want: "$1,234,567.89"},
		{cents: -2550, want: "-$25.50"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.cents))
		})
	}
}
