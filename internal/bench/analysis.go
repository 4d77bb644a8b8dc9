package bench

// arrayKey identifies one generated array. Size is part of the key so that
// hand-built results without an Array ordinal still group by size.
type arrayKey struct {
	array int
	size  int
}

func keyOf(r Result) arrayKey {
	return arrayKey{array: r.Array, size: r.Size}
}

// Analyze returns every trial whose sum disagrees with the first trial of
// the same array. All trials of one array reduce the same values, so any
// disagreement is a defect in a reduction. Repeated sizes in a matrix are
// distinct arrays and are never compared with each other.
func Analyze(results []Result) []Mismatch {
	first := make(map[arrayKey]Result)
	var mismatches []Mismatch
	for _, r := range results {
		ref, ok := first[keyOf(r)]
		if !ok {
			first[keyOf(r)] = r
			continue
		}
		if r.Sum != ref.Sum {
			mismatches = append(mismatches, Mismatch{Array: r.Array, Size: r.Size, Expected: ref, Got: r})
		}
	}
	return mismatches
}

// Speedup returns the sequential time of r's array divided by r's time, or
// 0 when no sequential trial of that array is in results.
func Speedup(results []Result, r Result) float64 {
	if r.Duration <= 0 {
		return 0
	}
	for _, s := range results {
		if keyOf(s) == keyOf(r) && s.Threads == 1 {
			return float64(s.Duration) / float64(r.Duration)
		}
	}
	return 0
}
