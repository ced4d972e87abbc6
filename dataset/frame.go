package dataset

import "math"

// ============================================================================
// FRAME — Columnar table with string and numeric columns
// ============================================================================
// The working dataset. Sources produce all-text Frames; Normalize
// coerces the numeric fields and appends derived columns. NaN is the
// missing-value sentinel for numeric cells, "" for text cells.
//
// Frames are built once and read by every chart builder — nothing
// mutates a Frame after construction. Derivations go through View.
// ============================================================================

// Frame is a column-ordered table. Each column is either text or numeric.
type Frame struct {
	n    int
	cols []string // column order, text and numeric interleaved
	text map[string][]string
	nums map[string][]float64
}

// NewFrame creates an empty frame with a fixed row count.
func NewFrame(rows int) *Frame {
	return &Frame{
		n:    rows,
		text: make(map[string][]string),
		nums: make(map[string][]float64),
	}
}

// FromRows builds an all-text frame from a header row and data rows.
// Short rows are padded with empty cells; long rows are truncated.
func FromRows(headers []string, rows [][]string) *Frame {
	f := NewFrame(len(rows))
	for i, h := range headers {
		col := make([]string, len(rows))
		for r, row := range rows {
			if i < len(row) {
				col[r] = row[i]
			}
		}
		f.SetText(h, col)
	}
	return f
}

// Len returns the number of rows.
func (f *Frame) Len() int { return f.n }

// Columns returns column names in order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.cols))
	copy(out, f.cols)
	return out
}

// SetText adds or replaces a text column. The slice must have Len() entries.
func (f *Frame) SetText(name string, values []string) {
	if len(values) != f.n {
		panic("dataset: column length mismatch")
	}
	if _, isText := f.text[name]; !isText {
		if _, isNum := f.nums[name]; !isNum {
			f.cols = append(f.cols, name)
		}
	}
	delete(f.nums, name)
	f.text[name] = values
}

// SetNum adds or replaces a numeric column. The slice must have Len() entries.
func (f *Frame) SetNum(name string, values []float64) {
	if len(values) != f.n {
		panic("dataset: column length mismatch")
	}
	if _, isNum := f.nums[name]; !isNum {
		if _, isText := f.text[name]; !isText {
			f.cols = append(f.cols, name)
		}
	}
	delete(f.text, name)
	f.nums[name] = values
}

// ============================================================================
// VIEW — Zero-copy indexed access
// ============================================================================
// Chart builders never own the data. They read through View and derive
// filtered subsets as SubViews (index lists into the parent).
// ============================================================================

// View provides indexed, read-only access to a dataset.
// Builders call Text/Num in tight loops — keep implementations fast.
type View interface {
	Len() int
	Text(index int, col string) string
	Num(index int, col string) float64 // NaN when missing
	HasText(col string) bool
	HasNum(col string) bool
}

// Frame implements View directly.

func (f *Frame) Text(i int, col string) string {
	if i < 0 || i >= f.n {
		return ""
	}
	if vals, ok := f.text[col]; ok {
		return vals[i]
	}
	return ""
}

func (f *Frame) Num(i int, col string) float64 {
	if i < 0 || i >= f.n {
		return math.NaN()
	}
	if vals, ok := f.nums[col]; ok {
		return vals[i]
	}
	return math.NaN()
}

func (f *Frame) HasText(col string) bool {
	_, ok := f.text[col]
	return ok
}

func (f *Frame) HasNum(col string) bool {
	_, ok := f.nums[col]
	return ok
}

// ============================================================================
// SUB VIEW — filtered subset (zero-copy)
// ============================================================================

// SubView is a filtered subset of a parent View.
// Holds indices into the parent — no data copy.
type SubView struct {
	parent  View
	indices []int
}

// NewSubView creates a view over the given parent row indices.
func NewSubView(parent View, indices []int) View {
	return &SubView{parent: parent, indices: indices}
}

func (v *SubView) Len() int { return len(v.indices) }

func (v *SubView) Text(i int, col string) string {
	if i < 0 || i >= len(v.indices) {
		return ""
	}
	return v.parent.Text(v.indices[i], col)
}

func (v *SubView) Num(i int, col string) float64 {
	if i < 0 || i >= len(v.indices) {
		return math.NaN()
	}
	return v.parent.Num(v.indices[i], col)
}

func (v *SubView) HasText(col string) bool { return v.parent.HasText(col) }
func (v *SubView) HasNum(col string) bool  { return v.parent.HasNum(col) }
