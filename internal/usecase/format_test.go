package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		name  string
		price float64
		want  string
	}{
		{"sub-cent gets 8 decimals", 0.0000001, "$0.00000010"},
		{"just under a cent", 0.0099, "$0.00990000"},
		{"sub-dollar gets 4 decimals", 0.5, "$0.5000"},
		{"exactly one cent", 0.01, "$0.0100"},
		{"under a hundred gets 2 decimals", 50, "$50.00"},
		{"just under a hundred", 99.99, "$99.99"},
		{"hundred and above grouped", 100, "$100.00"},
		{"thousands grouped", 51000, "$51,000.00"},
		{"large grouped", 150000, "$150,000.00"},
		{"millions grouped", 1234567.891, "$1,234,567.89"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, FormatPrice(tc.price))
		})
	}
}
