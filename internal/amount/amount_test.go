package amount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlain(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1200", 1200},
		{"12,345", 12345},
		{"12,345.50", 12345.5},
		{"１２３４５", 12345},
		{"3000円", 3000},
		{" 1,000 ", 1000},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		require.NoError(t, err, "input %q", c.in)
		assert.InDelta(t, c.want, got, 1e-9, "input %q", c.in)
	}
}

func TestParseMagnitudeMarkers(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"2万", 20_000},
		{"1.5万", 15_000},
		{"3億", 300_000_000},
		{"1億2345万6789", 123_456_789},
		{"2万500", 20_500},
		{"１億２３４５万６７８９", 123_456_789},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		require.NoError(t, err, "input %q", c.in)
		assert.InDelta(t, c.want, got, 1e-9, "input %q", c.in)
	}
}

func TestParseRejectsNonPositive(t *testing.T) {
	for _, in := range []string{"0", "-500", "−500", ""} {
		_, err := Parse(in)
		require.Error(t, err, "input %q", in)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, in := range []string{"abc", "万", "1億abc"} {
		_, err := Parse(in)
		require.Error(t, err, "input %q", in)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "12345", Normalize("１２,３４５円"))
	assert.Equal(t, "-98", Normalize("−9 8yen"))
	assert.Equal(t, "1億2万", Normalize("1億2万"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1,234,567", Format(1234567))
	assert.Equal(t, "-1,200", Format(-1200))
	assert.Equal(t, "0", Format(0))
	assert.Equal(t, "999", Format(999))
	assert.Equal(t, "12,345.5", Format(12345.50))
}
