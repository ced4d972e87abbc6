package report

import (
	"math"
	"strconv"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"

	"github.com/evscope-org/evscope/dataset"
)

// ============================================================================
// CHART BUILDERS — Eight independent sections over the canonical frame
// ============================================================================
// Shared shape:
//   1. Column-existence guard → fixed "not available" text, no chart.
//   2. Aggregate/filter; empty working set → fixed "no data" text.
//   3. Emit heading, two-part caption with glossary, then the chart.
//
// Builders never fail on data conditions; the only returned errors are
// sink write failures.
// ============================================================================

// mapColor is the fixed marker color for the registration map.
const mapColor = "#F89613"

// MapChart renders the geographic scatter of registrations, sampled
// down to at most sampleCap points, deterministically for the given
// seed.
func MapChart(v dataset.View, sink Sink, sampleCap int, seed int64) error {
	if !v.HasNum(dataset.ColLongitude) || !v.HasNum(dataset.ColLatitude) {
		return sink.Text("Geocoded location data not available for mapping.")
	}

	located := dataset.DropMissingNum(v, dataset.ColLongitude, dataset.ColLatitude)
	if located.Len() == 0 {
		return sink.Text("No valid geolocation data available for mapping EV registrations.")
	}

	if err := sink.Text("## Washington State EV Registration Map"); err != nil {
		return err
	}
	if err := sink.Text(caption(
		"This map shows the locations of registered EVs across Washington State. Each point represents a registered EV.",
		"Clusters reveal urban hotspots and geographic trends in EV adoption.",
		"EV", "WA",
	)); err != nil {
		return err
	}

	sampled := dataset.Sample(located, sampleCap, seed)

	points := make([]GeoPoint, sampled.Len())
	flat := make([]float64, 0, sampled.Len()*2)
	for i := range points {
		lon := sampled.Num(i, dataset.ColLongitude)
		lat := sampled.Num(i, dataset.ColLatitude)
		points[i] = GeoPoint{Lon: lon, Lat: lat, Hover: hoverFields(sampled, i)}
		flat = append(flat, lon, lat)
	}
	center := xy.PointsCentroidFlat(geom.XY, flat)

	return sink.Chart(&ChartConfig{
		Kind:  KindScatterGeo,
		Title: "EV Registrations Across Washington State",
		Geo: &GeoConfig{
			Points:    points,
			CenterLon: center[0],
			CenterLat: center[1],
			Zoom:      5.5,
			Basemap:   "open-street-map",
			Color:     mapColor,
		},
	})
}

// hoverFields collects the hover context columns present in the view.
func hoverFields(v dataset.View, i int) map[string]string {
	hover := make(map[string]string)
	for _, col := range []string{dataset.ColCity, dataset.ColMake, dataset.ColModel, dataset.ColCounty} {
		if v.HasText(col) {
			if val := v.Text(i, col); val != "" {
				hover[col] = val
			}
		}
	}
	if v.HasNum(dataset.ColModelYear) {
		if year := v.Num(i, dataset.ColModelYear); !math.IsNaN(year) {
			hover[dataset.ColModelYear] = strconv.FormatFloat(year, 'f', -1, 64)
		}
	}
	if len(hover) == 0 {
		return nil
	}
	return hover
}

// TopMakesModels renders the horizontal bar chart of the most common
// make/model combinations.
func TopMakesModels(v dataset.View, sink Sink, limit int) error {
	if !v.HasText(dataset.ColMake) || !v.HasText(dataset.ColModel) {
		return sink.Text("Make and model data not available.")
	}

	top := dataset.RankByCount(dataset.CountByPair(v, dataset.ColMake, dataset.ColModel), limit)
	if len(top) == 0 {
		return sink.Text("No data available for top makes and models.")
	}

	if err := sink.Text("## Top Makes and Models"); err != nil {
		return err
	}
	if err := sink.Text(caption(
		"This bar chart shows the most common electric vehicle (EV) makes and models registered in Washington (WA).",
		"It reveals which brands and models are most popular among EV owners.",
		"EV", "WA",
	)); err != nil {
		return err
	}

	return sink.Chart(&ChartConfig{
		Kind:   KindHBar,
		Title:  "Top " + strconv.Itoa(limit) + " EV Makes and Models",
		XLabel: "Number of Vehicles",
		YLabel: "Make and Model",
		Series: groupSeries(top, "Vehicles"),
	})
}

// TypeShare renders the BEV/PHEV market split pie chart.
func TypeShare(v dataset.View, sink Sink) error {
	if !v.HasText(dataset.ColEVType) {
		return sink.Text("EV type data not available.")
	}

	counts := dataset.CountBy(v, dataset.ColEVType)
	if len(counts) == 0 {
		return sink.Text("No data available for BEV vs PHEV share.")
	}

	if err := sink.Text("## BEV vs PHEV Share"); err != nil {
		return err
	}
	if err := sink.Text(caption(
		"This pie chart shows the proportion of Battery Electric Vehicles (BEVs) vs Plug-in Hybrid Electric Vehicles (PHEVs) in the state.",
		"It highlights the market split between fully electric and plug-in hybrid vehicles.",
		"BEV", "PHEV", "EV",
	)); err != nil {
		return err
	}

	return sink.Chart(&ChartConfig{
		Kind:       KindPie,
		Title:      "BEV vs PHEV Share",
		Series:     groupSeries(counts, "Vehicles"),
		ShowLegend: true,
	})
}

// RangeDistribution renders the electric range histogram.
func RangeDistribution(v dataset.View, sink Sink, bins int) error {
	if !v.HasNum(dataset.ColElectricRange) {
		return sink.Text("Electric range data not available.")
	}

	if err := sink.Text("## Electric Range Distribution"); err != nil {
		return err
	}
	if err := sink.Text(caption(
		"This histogram shows how far EVs can travel on electric power alone.",
		"It reveals the most common electric ranges and the spread of EV capabilities.",
		"EV",
	)); err != nil {
		return err
	}

	values := dataset.NumValues(v, dataset.ColElectricRange)
	if len(values) == 0 {
		return sink.Text("No data available for electric range distribution.")
	}

	return sink.Chart(&ChartConfig{
		Kind:   KindHistogram,
		Title:  "Distribution of Electric Range (miles)",
		XLabel: "Electric Range (miles)",
		YLabel: "Number of Vehicles",
		Bins:   dataset.EqualWidthBins(values, bins),
	})
}

// TopCities renders the vertical bar chart of the cities with the most
// registrations.
func TopCities(v dataset.View, sink Sink, limit int) error {
	if !v.HasText(dataset.ColCity) {
		return sink.Text("City data not available.")
	}

	counts := dataset.CountBy(v, dataset.ColCity)
	if len(counts) == 0 {
		return sink.Text("No data available for top cities.")
	}

	if err := sink.Text("## Top Cities for EVs"); err != nil {
		return err
	}
	if err := sink.Text(caption(
		"This bar chart shows which cities have the most registered EVs.",
		"It highlights geographic hotspots for EV adoption.",
		"EV",
	)); err != nil {
		return err
	}

	return sink.Chart(&ChartConfig{
		Kind:   KindBar,
		Title:  "Top " + strconv.Itoa(limit) + " Cities for EVs",
		XLabel: "City",
		YLabel: "Number of Vehicles",
		Series: groupSeries(dataset.RankByCount(counts, limit), "Vehicles"),
	})
}

// TopCounties renders the vertical bar chart of the counties with the
// most registrations.
func TopCounties(v dataset.View, sink Sink, limit int) error {
	if !v.HasText(dataset.ColCounty) {
		return sink.Text("County data not available.")
	}

	counts := dataset.CountBy(v, dataset.ColCounty)
	if len(counts) == 0 {
		return sink.Text("No data available for top counties.")
	}

	if err := sink.Text("## Top Counties for EVs"); err != nil {
		return err
	}
	if err := sink.Text(caption(
		"This bar chart shows which counties have the most registered EVs.",
		"It highlights geographic hotspots for EV adoption.",
		"EV",
	)); err != nil {
		return err
	}

	return sink.Chart(&ChartConfig{
		Kind:   KindBar,
		Title:  "Top " + strconv.Itoa(limit) + " Counties for EVs",
		XLabel: "County",
		YLabel: "Number of Vehicles",
		Series: groupSeries(dataset.RankByCount(counts, limit), "Vehicles"),
	})
}

// PriceByType renders the MSRP box plot per EV type, with all points
// kept alongside the summary statistics.
func PriceByType(v dataset.View, sink Sink) error {
	if !v.HasNum(dataset.ColBaseMSRP) || !v.HasText(dataset.ColEVType) {
		return sink.Text("MSRP or EV type data not available.")
	}

	if err := sink.Text("## MSRP by EV Type"); err != nil {
		return err
	}
	if err := sink.Text(caption(
		"This boxplot shows the distribution of Manufacturer's Suggested Retail Price (MSRP) for BEVs and PHEVs.",
		"It reveals price differences between fully electric and plug-in hybrid vehicles.",
		"MSRP", "BEV", "PHEV",
	)); err != nil {
		return err
	}

	priced := dataset.DropEmptyText(dataset.DropMissingNum(v, dataset.ColBaseMSRP), dataset.ColEVType)
	if priced.Len() == 0 {
		return sink.Text("No MSRP data available for BEV or PHEV vehicles.")
	}

	boxes := make([]BoxSeries, 0, 2)
	for _, g := range dataset.CountBy(priced, dataset.ColEVType) {
		points := make([]float64, 0, g.Count)
		for i := 0; i < priced.Len(); i++ {
			if priced.Text(i, dataset.ColEVType) == g.Key {
				points = append(points, priced.Num(i, dataset.ColBaseMSRP))
			}
		}
		boxes = append(boxes, BoxSeries{
			Label:  g.Key,
			Stats:  dataset.Summarize(points),
			Points: points,
		})
	}

	return sink.Chart(&ChartConfig{
		Kind:   KindBox,
		Title:  "MSRP by EV Type",
		XLabel: "EV Type (BEV/PHEV)",
		YLabel: "Base MSRP (USD)",
		Boxes:  boxes,
	})
}

// YearlyTrend renders the registrations-per-model-year line chart.
func YearlyTrend(v dataset.View, sink Sink) error {
	if !v.HasNum(dataset.ColModelYear) {
		return sink.Text("Model year data not available.")
	}

	if err := sink.Text("## Yearly Trend of EV Registrations"); err != nil {
		return err
	}
	if err := sink.Text(caption(
		"This line chart shows how many EVs were registered each year.",
		"It reveals growth trends in EV adoption over time.",
		"EV",
	)); err != nil {
		return err
	}

	trend := dataset.SortByNumericKey(dataset.CountByNum(v, dataset.ColModelYear))
	if len(trend) == 0 {
		return sink.Text("No registration data available by model year.")
	}

	return sink.Chart(&ChartConfig{
		Kind:    KindLine,
		Title:   "EV Registrations by Model Year",
		XLabel:  "Model Year",
		YLabel:  "Number of Registrations",
		Series:  groupSeries(trend, "Registrations"),
		Markers: true,
	})
}

// groupSeries converts counted groups into a single chart series.
func groupSeries(groups []dataset.Group, name string) []ChartSeries {
	points := make([]ChartPoint, len(groups))
	for i, g := range groups {
		points[i] = ChartPoint{Label: g.Key, Value: float64(g.Count)}
	}
	return []ChartSeries{{Name: name, Data: points}}
}
