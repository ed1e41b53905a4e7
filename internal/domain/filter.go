package domain

// SortBy selects the order of a filtered article list.
type SortBy string

const (
	SortByViewsDesc SortBy = "views_desc"
	SortByViewsAsc  SortBy = "views_asc"
	SortByDateDesc  SortBy = "date_desc"
	SortByDateAsc   SortBy = "date_asc"
	SortByTitleAsc  SortBy = "title_asc"
	SortByTitleDesc SortBy = "title_desc"
)

func DefaultSortBy() SortBy {
	return SortByViewsDesc
}

func (s SortBy) IsValid() bool {
	switch s {
	case SortByViewsDesc, SortByViewsAsc, SortByDateDesc, SortByDateAsc, SortByTitleAsc, SortByTitleDesc:
		return true
	}
	return false
}

// ArticleFilter describes how a most-popular result set is narrowed
// and ordered. The zero value selects everything in the default order
// once WithDefaults is applied.
type ArticleFilter struct {
	Period Period
	// Section keeps only articles whose section matches
	// case-insensitively. Empty means no section filter.
	Section string
	// HasMedia keeps only articles with (true) or without (false)
	// media. Nil means no media filter.
	HasMedia *bool
	SortBy   SortBy
}

// DefaultFilter returns a filter for the default period sorted by
// views descending.
func DefaultFilter() ArticleFilter {
	return ArticleFilter{
		Period: DefaultPeriod(),
		SortBy: DefaultSortBy(),
	}
}

// WithDefaults returns a copy of the filter with empty period and sort
// fields replaced by their defaults.
func (f ArticleFilter) WithDefaults() ArticleFilter {
	if f.Period == "" {
		f.Period = DefaultPeriod()
	}
	if f.SortBy == "" {
		f.SortBy = DefaultSortBy()
	}
	return f
}
