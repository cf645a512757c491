package localnews

import (
	"strings"
	"time"
)

// SourceAll passes every source through the source filter.
const SourceAll = "Todos"

// Date bucket identifiers accepted by FilterOptions.Range.
const (
	RangeAll   = "all"
	RangeToday = "today"
	RangeWeek  = "week"
	RangeMonth = "month"
)

// FilterOptions are the three independent listing filters. They combine as
// a logical AND; zero values pass everything.
type FilterOptions struct {
	Source string
	Range  string
	Query  string
}

// ValidRange reports whether r names a known date bucket.
func ValidRange(r string) bool {
	switch r {
	case "", RangeAll, RangeToday, RangeWeek, RangeMonth:
		return true
	}
	return false
}

// Filter derives the display subset of articles. It is pure and stable:
// the relative order of the input is preserved, never re-sorted. now is
// injected so bucket boundaries are testable.
func Filter(articles []Article, opts FilterOptions, now time.Time) []Article {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := today.AddDate(0, 0, -7)
	monthAgo := today.AddDate(0, -1, 0)

	term := strings.ToLower(strings.TrimSpace(opts.Query))

	matched := make([]Article, 0, len(articles))
	for _, article := range articles {
		if opts.Source != "" && opts.Source != SourceAll && article.Source != opts.Source {
			continue
		}

		switch opts.Range {
		case RangeToday:
			if article.RawDate.Before(today) {
				continue
			}
		case RangeWeek:
			if article.RawDate.Before(weekAgo) {
				continue
			}
		case RangeMonth:
			if article.RawDate.Before(monthAgo) {
				continue
			}
		}

		if term != "" &&
			!strings.Contains(strings.ToLower(article.Title), term) &&
			!strings.Contains(strings.ToLower(article.Description), term) {
			continue
		}

		matched = append(matched, article)
	}
	return matched
}
