// Package relfilter implements relative weather filtering: bucket
// boundaries are percentiles of the currently visible dataset, so "cold"
// means cold relative to what's on the map right now, not a fixed
// threshold. The same 40F reading can be mild in winter data and cold in
// summer data.
package relfilter

import "sort"

// Band identifies which of the three relative buckets a value fell in.
type Band int

const (
	BandLow Band = iota
	BandMid
	BandHigh
)

// Split describes how much of the sorted dataset each bucket takes.
// Low + Mid + High fractions must sum to 1; High is implied.
type Split struct {
	Low float64
	Mid float64
}

var (
	// TemperatureSplit is cold/mild/hot at roughly 20/60/20.
	TemperatureSplit = Split{Low: 0.2, Mid: 0.6}
	// PrecipitationSplit is none/light/heavy at roughly 30/40/30.
	PrecipitationSplit = Split{Low: 0.3, Mid: 0.4}
	// WindSplit is calm/breezy/windy at roughly 30/40/30.
	WindSplit = Split{Low: 0.3, Mid: 0.4}
)

// Thresholds holds the two cut values that partition a dataset into
// three bands, plus the observed min/max for deviation math.
type Thresholds struct {
	LowCut  float64
	HighCut float64
	Min     float64
	Max     float64
}

// ComputeThresholds derives bucket cuts from the values actually present.
// Returns ok=false for an empty input.
func ComputeThresholds(values []float64, split Split) (Thresholds, bool) {
	n := len(values)
	if n == 0 {
		return Thresholds{}, false
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	lowIdx := int(float64(n) * split.Low)
	highIdx := int(float64(n) * (split.Low + split.Mid))
	if lowIdx > n-1 {
		lowIdx = n - 1
	}
	if highIdx > n-1 {
		highIdx = n - 1
	}

	return Thresholds{
		LowCut:  sorted[lowIdx],
		HighCut: sorted[highIdx],
		Min:     sorted[0],
		Max:     sorted[n-1],
	}, true
}

// BandOf assigns a value to exactly one band. The low check wins over the
// high check so that duplicated cut values still yield a partition.
func (t Thresholds) BandOf(v float64) Band {
	switch {
	case v <= t.LowCut:
		return BandLow
	case v >= t.HighCut:
		return BandHigh
	default:
		return BandMid
	}
}

// bandCenter is the midpoint of a band's value range within the dataset,
// used to order fallback candidates by how close they came to the
// requested bucket.
func (t Thresholds) bandCenter(b Band) float64 {
	switch b {
	case BandLow:
		return (t.Min + t.LowCut) / 2
	case BandHigh:
		return (t.HighCut + t.Max) / 2
	default:
		return (t.LowCut + t.HighCut) / 2
	}
}

// normalizedDeviation is |v - band center| scaled by the dataset's value
// range, so deviations sum comparably across axes with different units.
func (t Thresholds) normalizedDeviation(v float64, b Band) float64 {
	span := t.Max - t.Min
	if span == 0 {
		return 0
	}
	d := v - t.bandCenter(b)
	if d < 0 {
		d = -d
	}
	return d / span
}
