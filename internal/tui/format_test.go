package tui

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"0":        "0",
		"500":      "500",
		"50000":    "50,000",
		"1350500":  "1,350,500",
		"-120000":  "-120,000",
		"9.15":     "9.15",
		"1350.5":   "1,350.5",
		"-1480.25": "-1,480.25",
	}
	for in, want := range cases {
		got := formatAmount(decimal.RequireFromString(in))
		assert.Equal(t, want, got, "input %s", in)
	}
}

func TestFormatWon(t *testing.T) {
	assert.Equal(t, "50,000원", formatWon(decimal.NewFromInt(50000)))
}

func TestParseDecimal_StripsCommas(t *testing.T) {
	d, err := parseDecimal("1,350,500")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(1350500)))

	_, err = parseDecimal("오만원")
	assert.Error(t, err)
}

func TestFormatShortDate(t *testing.T) {
	assert.Equal(t, "8/3", formatShortDate("2024-08-03"))
	assert.Equal(t, "not-a-date", formatShortDate("not-a-date"))
}

func TestFormatDotDate(t *testing.T) {
	assert.Equal(t, "2024.08.03", formatDotDate("2024-08-03"))
}
