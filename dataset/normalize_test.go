package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleFrame mirrors a slice of the registry export, including one
// bad MSRP cell and one malformed geometry cell.
func sampleFrame() *Frame {
	headers := []string{
		"VIN (1-10)", "County", "City", "Make", "Model",
		"Model Year", "Electric Vehicle Type", "Electric Range",
		"Base MSRP", "Vehicle Location",
	}
	rows := [][]string{
		{"5YJ3E1EB0K", "King", "Seattle", "TESLA", "MODEL 3", "2019", "Battery Electric Vehicle (BEV)", "220", "0", "POINT (-122.33 47.61)"},
		{"1N4AZ0CP5D", "King", "Bellevue", "NISSAN", "LEAF", "2013", "Battery Electric Vehicle (BEV)", "75", "N/A", "POINT (-122.2 47.61)"},
		{"5UXKT0C5XH", "Kitsap", "Poulsbo", "BMW", "X5", "2017", "Plug-in Hybrid Electric Vehicle (PHEV)", "14", "52395", "not a point"},
	}
	return FromRows(headers, rows)
}

func TestNormalizeRenamesColumns(t *testing.T) {
	ds := Normalize(sampleFrame())

	for _, col := range []string{ColVIN, ColCounty, ColCity, ColMake, ColModel, ColEVType, ColGeocoded} {
		assert.True(t, ds.HasText(col), "missing canonical column %s", col)
	}
	assert.Equal(t, "Seattle", ds.Text(0, ColCity))
	assert.Equal(t, "TESLA", ds.Text(0, ColMake))
	assert.False(t, ds.HasText("City"), "source header should be gone after rename")
}

func TestNormalizeLeavesUnknownColumnsAlone(t *testing.T) {
	raw := FromRows([]string{"City", "Odometer"}, [][]string{{"Tacoma", "12000"}})
	ds := Normalize(raw)

	assert.True(t, ds.HasText(ColCity))
	assert.True(t, ds.HasText("Odometer"), "unknown columns carry over unchanged")
}

func TestNormalizeIdempotentOnNaming(t *testing.T) {
	once := Normalize(sampleFrame())
	twice := Normalize(once)

	assert.Equal(t, once.Columns(), twice.Columns())
	assert.Equal(t, once.Text(1, ColCity), twice.Text(1, ColCity))
	assert.Equal(t, once.Num(0, ColBaseMSRP), twice.Num(0, ColBaseMSRP))
}

func TestNormalizeCoercesNumerics(t *testing.T) {
	ds := Normalize(sampleFrame())

	require.True(t, ds.HasNum(ColElectricRange))
	require.True(t, ds.HasNum(ColBaseMSRP))
	require.True(t, ds.HasNum(ColModelYear))

	assert.Equal(t, 220.0, ds.Num(0, ColElectricRange))
	assert.Equal(t, 2019.0, ds.Num(0, ColModelYear))
	assert.Equal(t, 0.0, ds.Num(0, ColBaseMSRP))

	// "N/A" becomes missing, not zero and not an error.
	assert.True(t, math.IsNaN(ds.Num(1, ColBaseMSRP)))
}

func TestNormalizeGeometryExpansion(t *testing.T) {
	ds := Normalize(sampleFrame())

	require.True(t, ds.HasNum(ColLongitude))
	require.True(t, ds.HasNum(ColLatitude))

	assert.Equal(t, -122.33, ds.Num(0, ColLongitude))
	assert.Equal(t, 47.61, ds.Num(0, ColLatitude))

	// Longitude and latitude are jointly present or jointly missing.
	for i := 0; i < ds.Len(); i++ {
		lonMissing := math.IsNaN(ds.Num(i, ColLongitude))
		latMissing := math.IsNaN(ds.Num(i, ColLatitude))
		assert.Equal(t, lonMissing, latMissing, "row %d: lon/lat must be jointly missing or present", i)
	}
	assert.True(t, math.IsNaN(ds.Num(2, ColLongitude)), "malformed geometry decodes to missing")
}

func TestNormalizeWithoutGeometryColumn(t *testing.T) {
	raw := FromRows([]string{"Make", "Model"}, [][]string{{"TESLA", "MODEL 3"}})
	ds := Normalize(raw)

	assert.False(t, ds.HasNum(ColLongitude))
	assert.False(t, ds.HasNum(ColLatitude))
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	raw := sampleFrame()
	_ = Normalize(raw)

	assert.True(t, raw.HasText("City"), "input frame must keep its source headers")
	assert.Equal(t, "N/A", raw.Text(1, "Base MSRP"))
}
