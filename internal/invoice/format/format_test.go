package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{666, "$6.66"},
		{50000, "$500.00"},
		{123456, "$1,234.56"},
		{100000000, "$1,000,000.00"},
		{-2500, "-$25.00"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Currency(c.cents))
	}
}

func TestDate(t *testing.T) {
	d := time.Date(2024, time.October, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Oct 5, 2024", Date(d))
}
