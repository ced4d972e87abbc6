package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/twpayne/go-geom"
)

// ============================================================================
// POINT DECODER — WKT "POINT (lon lat)" → (longitude, latitude)
// ============================================================================
// The geocoded column carries WKT point text straight from the source
// registry and is not schema-validated upstream, so this is the one
// defensive parser in the pipeline. Every malformed shape resolves to
// the NaN pair — no error, no panic.
// ============================================================================

const (
	pointPrefix = "POINT ("
	pointSuffix = ")"
)

// DecodePoint parses a WKT point cell into (longitude, latitude, true).
// Missing or malformed input returns (NaN, NaN, false): empty cells,
// wrong prefix or suffix, a token count other than two, or tokens that
// fail to parse as floats.
func DecodePoint(val string) (lon, lat float64, ok bool) {
	val = strings.TrimSpace(val)
	if val == "" {
		return math.NaN(), math.NaN(), false
	}
	if !strings.HasPrefix(val, pointPrefix) || !strings.HasSuffix(val, pointSuffix) {
		return math.NaN(), math.NaN(), false
	}

	coords := strings.Fields(val[len(pointPrefix) : len(val)-len(pointSuffix)])
	if len(coords) != 2 {
		return math.NaN(), math.NaN(), false
	}

	lon, err := strconv.ParseFloat(coords[0], 64)
	if err != nil {
		return math.NaN(), math.NaN(), false
	}
	lat, err = strconv.ParseFloat(coords[1], 64)
	if err != nil {
		return math.NaN(), math.NaN(), false
	}
	return lon, lat, true
}

// DecodeGeomPoint parses a WKT point cell into a geom XY point, for
// consumers that do geometry math on the result. Returns nil when the
// cell does not decode.
func DecodeGeomPoint(val string) *geom.Point {
	lon, lat, ok := DecodePoint(val)
	if !ok {
		return nil
	}
	return geom.NewPointFlat(geom.XY, []float64{lon, lat})
}
