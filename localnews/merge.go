package localnews

import "sort"

// Merge flattens the per-feed batches into one list sorted newest first.
// Two sources carrying the same story both stay in the list; cross-source
// deduplication is a known limitation, not this layer's job. Articles whose
// date failed to parse carry the zero time and end up at the bottom.
func Merge(batches [][]Article) []Article {
	total := 0
	for _, batch := range batches {
		total += len(batch)
	}

	merged := make([]Article, 0, total)
	for _, batch := range batches {
		merged = append(merged, batch...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].RawDate.After(merged[j].RawDate)
	})
	return merged
}
