package dataset

import (
	"math"
	"strconv"
	"strings"
)

// ============================================================================
// NORMALIZER — Raw source frame → canonical working frame
// ============================================================================
// Three steps, in order:
//   1. Rename known source columns to canonical names (exact match only).
//   2. Coerce the three numeric fields; unparsable cells become NaN.
//   3. Decode the geocoded column into paired longitude/latitude columns.
//
// The input frame is read-only; Normalize returns a new Frame.
// ============================================================================

// Canonical column names.
const (
	ColVIN           = "vin_1_10"
	ColCounty        = "county"
	ColCity          = "city"
	ColState         = "state"
	ColZip           = "zip_code"
	ColModelYear     = "model_year"
	ColMake          = "make"
	ColModel         = "model"
	ColEVType        = "ev_type"
	ColCAFVType      = "cafv_type"
	ColElectricRange = "electric_range"
	ColBaseMSRP      = "base_msrp"
	ColLegislative   = "legislative_district"
	ColDOLVehicleID  = "dol_vehicle_id"
	ColGeocoded      = "geocoded_column"
	ColUtility       = "electric_utility"
	ColCensusTract   = "_2020_census_tract"
	ColLongitude     = "longitude"
	ColLatitude      = "latitude"
)

// columnMap renames the registry export headers to canonical names.
// Source columns absent from the input are simply not renamed, and
// already-canonical names are never touched, so Normalize is
// idempotent on naming.
var columnMap = map[string]string{
	"VIN (1-10)":            ColVIN,
	"County":                ColCounty,
	"City":                  ColCity,
	"State":                 ColState,
	"Postal Code":           ColZip,
	"Model Year":            ColModelYear,
	"Make":                  ColMake,
	"Model":                 ColModel,
	"Electric Vehicle Type": ColEVType,
	"Clean Alternative Fuel Vehicle (CAFV) Eligibility": ColCAFVType,
	"Electric Range":       ColElectricRange,
	"Base MSRP":            ColBaseMSRP,
	"Legislative District": ColLegislative,
	"DOL Vehicle ID":       ColDOLVehicleID,
	"Vehicle Location":     ColGeocoded,
	"Electric Utility":     ColUtility,
	"2020 Census Tract":    ColCensusTract,
}

// numericColumns are coerced to float64 during normalization.
var numericColumns = []string{ColElectricRange, ColBaseMSRP, ColModelYear}

// Normalize builds the canonical working frame from a raw source frame.
func Normalize(raw *Frame) *Frame {
	out := NewFrame(raw.Len())

	// 1. Copy columns under canonical names. A raw header maps through
	// columnMap when it matches exactly; everything else carries over
	// unchanged.
	for _, col := range raw.Columns() {
		name := col
		if canonical, ok := columnMap[col]; ok {
			name = canonical
		}
		if raw.HasNum(col) {
			out.SetNum(name, numColumn(raw, col))
			continue
		}
		out.SetText(name, textColumn(raw, col))
	}

	// 2. Numeric coercion. Failures become NaN, never errors.
	for _, col := range numericColumns {
		if !out.HasText(col) {
			continue
		}
		vals := make([]float64, out.Len())
		for i := range vals {
			vals[i] = coerceNumeric(out.Text(i, col))
		}
		out.SetNum(col, vals)
	}

	// 3. Geometry expansion. Longitude and latitude are always appended
	// together — jointly present or jointly NaN per row.
	if out.HasText(ColGeocoded) {
		lons := make([]float64, out.Len())
		lats := make([]float64, out.Len())
		for i := range lons {
			lons[i], lats[i], _ = DecodePoint(out.Text(i, ColGeocoded))
		}
		out.SetNum(ColLongitude, lons)
		out.SetNum(ColLatitude, lats)
	}

	return out
}

// coerceNumeric converts a cell to float64, NaN when it does not parse.
func coerceNumeric(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func textColumn(f *Frame, col string) []string {
	vals := make([]string, f.Len())
	for i := range vals {
		vals[i] = f.Text(i, col)
	}
	return vals
}

func numColumn(f *Frame, col string) []float64 {
	vals := make([]float64, f.Len())
	for i := range vals {
		vals[i] = f.Num(i, col)
	}
	return vals
}
