package dataset

import (
	"math"
	"math/rand"
	"sort"
	"strconv"
)

// ============================================================================
// AGGREGATION — Counting, ranking, filtering, sampling, binning
// ============================================================================
// All functions operate on View — zero-copy access to the canonical
// frame. Grouping preserves first-encounter order, which is also the
// tie-break for equal-count rankings: RankByCount sorts stably, so
// ties keep the order their keys first appeared in the data.
// ============================================================================

// Group is one category produced by a counting pass.
type Group struct {
	Key   string
	Count int
}

// CountBy counts rows per value of a text column, in first-encounter
// order. Empty cells are skipped.
func CountBy(v View, col string) []Group {
	counts := make(map[string]int)
	order := make([]string, 0)

	for i := 0; i < v.Len(); i++ {
		key := v.Text(i, col)
		if key == "" {
			continue
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, Group{Key: key, Count: counts[key]})
	}
	return groups
}

// CountByNum counts rows per value of a numeric column, in
// first-encounter order. NaN cells are skipped; keys are formatted
// with the shortest exact decimal representation.
func CountByNum(v View, col string) []Group {
	counts := make(map[string]int)
	order := make([]string, 0)

	for i := 0; i < v.Len(); i++ {
		f := v.Num(i, col)
		if math.IsNaN(f) {
			continue
		}
		key := strconv.FormatFloat(f, 'f', -1, 64)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, Group{Key: key, Count: counts[key]})
	}
	return groups
}

// CountByPair counts rows per (a, b) text column pair, in
// first-encounter order, joining the pair with a single space.
// Rows where either cell is empty are skipped.
func CountByPair(v View, a, b string) []Group {
	counts := make(map[string]int)
	order := make([]string, 0)

	for i := 0; i < v.Len(); i++ {
		left, right := v.Text(i, a), v.Text(i, b)
		if left == "" || right == "" {
			continue
		}
		key := left + " " + right
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, Group{Key: key, Count: counts[key]})
	}
	return groups
}

// RankByCount sorts groups by descending count (stable) and keeps at
// most limit entries. limit <= 0 keeps all.
func RankByCount(groups []Group, limit int) []Group {
	ranked := make([]Group, len(groups))
	copy(ranked, groups)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// SortByNumericKey sorts groups ascending by their key parsed as a
// number; non-numeric keys sort last in encounter order.
func SortByNumericKey(groups []Group) []Group {
	sorted := make([]Group, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, aok := parseNum(sorted[i].Key)
		b, bok := parseNum(sorted[j].Key)
		if aok != bok {
			return aok
		}
		return a < b
	})
	return sorted
}

// ============================================================================
// FILTERING
// ============================================================================

// DropMissingNum returns a view of rows where every named numeric
// column has a non-NaN value.
func DropMissingNum(v View, cols ...string) View {
	indices := make([]int, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		keep := true
		for _, col := range cols {
			if math.IsNaN(v.Num(i, col)) {
				keep = false
				break
			}
		}
		if keep {
			indices = append(indices, i)
		}
	}
	return NewSubView(v, indices)
}

// DropEmptyText returns a view of rows where every named text column
// is non-empty.
func DropEmptyText(v View, cols ...string) View {
	indices := make([]int, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		keep := true
		for _, col := range cols {
			if v.Text(i, col) == "" {
				keep = false
				break
			}
		}
		if keep {
			indices = append(indices, i)
		}
	}
	return NewSubView(v, indices)
}

// NumValues collects non-NaN values of a numeric column.
func NumValues(v View, col string) []float64 {
	vals := make([]float64, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if f := v.Num(i, col); !math.IsNaN(f) {
			vals = append(vals, f)
		}
	}
	return vals
}

// ============================================================================
// SAMPLING
// ============================================================================

// Sample draws at most n rows without replacement, deterministically
// for a given seed. The sampled rows keep their dataset order. When
// the view has n rows or fewer it is returned unchanged.
func Sample(v View, n int, seed int64) View {
	if v.Len() <= n {
		return v
	}
	rng := rand.New(rand.NewSource(seed))
	picked := rng.Perm(v.Len())[:n]
	sort.Ints(picked)
	return NewSubView(v, picked)
}

// ============================================================================
// BINNING
// ============================================================================

// Bin is one equal-width histogram bucket over [Lo, Hi).
// The last bin is closed on both ends.
type Bin struct {
	Lo    float64 `json:"lo"`
	Hi    float64 `json:"hi"`
	Count int     `json:"count"`
}

// EqualWidthBins buckets values into n equal-width bins spanning
// [min, max]. A constant-valued input collapses to a single bin.
func EqualWidthBins(values []float64, n int) []Bin {
	if len(values) == 0 || n <= 0 {
		return nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if lo == hi {
		return []Bin{{Lo: lo, Hi: hi, Count: len(values)}}
	}

	width := (hi - lo) / float64(n)
	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Lo = lo + float64(i)*width
		bins[i].Hi = lo + float64(i+1)*width
	}
	bins[n-1].Hi = hi

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= n {
			idx = n - 1
		}
		bins[idx].Count++
	}
	return bins
}

// ============================================================================
// SUMMARY STATISTICS
// ============================================================================

// BoxStats are five-number summary statistics for a box plot.
type BoxStats struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Summarize computes box plot statistics over values. Quartiles use
// linear interpolation between closest ranks.
func Summarize(values []float64) BoxStats {
	if len(values) == 0 {
		return BoxStats{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return BoxStats{
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
}

func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func parseNum(s string) (float64, bool) {
	v := coerceNumeric(s)
	return v, !math.IsNaN(v)
}
