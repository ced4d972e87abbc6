package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePointValid(t *testing.T) {
	lon, lat, ok := DecodePoint("POINT (-122.33 47.61)")
	require.True(t, ok)
	assert.Equal(t, -122.33, lon)
	assert.Equal(t, 47.61, lat)
}

func TestDecodePointTrimsSurroundingWhitespace(t *testing.T) {
	lon, lat, ok := DecodePoint("  POINT (-120.5 46.6)  ")
	require.True(t, ok)
	assert.Equal(t, -120.5, lon)
	assert.Equal(t, 46.6, lat)
}

func TestDecodePointMalformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"wrong prefix", "POINT(-122.33 47.61)"},
		{"lowercase tag", "point (-122.33 47.61)"},
		{"missing suffix", "POINT (-122.33 47.61"},
		{"one token", "POINT (-122.33)"},
		{"three tokens", "POINT (-122.33 47.61 0.0)"},
		{"non-numeric lon", "POINT (west 47.61)"},
		{"non-numeric lat", "POINT (-122.33 north)"},
		{"not a point", "LINESTRING (0 0, 1 1)"},
		{"plain text", "Seattle"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lon, lat, ok := DecodePoint(tc.in)
			assert.False(t, ok)
			assert.True(t, math.IsNaN(lon), "longitude should be NaN")
			assert.True(t, math.IsNaN(lat), "latitude should be NaN")
		})
	}
}

func TestDecodeGeomPoint(t *testing.T) {
	pt := DecodeGeomPoint("POINT (-122.33 47.61)")
	require.NotNil(t, pt)
	assert.Equal(t, -122.33, pt.X())
	assert.Equal(t, 47.61, pt.Y())

	assert.Nil(t, DecodeGeomPoint("not a point"))
}
