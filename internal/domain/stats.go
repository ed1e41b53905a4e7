package domain

import (
	"sort"
	"strings"
)

// ExtractSections returns the distinct non-blank section names of the
// given articles, sorted alphabetically.
func ExtractSections(articles []Article) []string {
	seen := make(map[string]struct{}, len(articles))
	var sections []string
	for _, a := range articles {
		section := strings.TrimSpace(a.Section)
		if section == "" {
			continue
		}
		if _, ok := seen[section]; ok {
			continue
		}
		seen[section] = struct{}{}
		sections = append(sections, section)
	}
	sort.Strings(sections)
	return sections
}

// FindByID returns the first article with the given id.
func FindByID(articles []Article, id int64) (Article, bool) {
	for _, a := range articles {
		if a.ID == id {
			return a, true
		}
	}
	return Article{}, false
}

// FilterBySection keeps articles whose section equals the given one,
// ignoring case.
func FilterBySection(articles []Article, section string) []Article {
	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		if strings.EqualFold(a.Section, section) {
			out = append(out, a)
		}
	}
	return out
}

// TopArticlesByViews returns up to limit articles ordered by views
// descending. The input slice is not modified.
func TopArticlesByViews(articles []Article, limit int) []Article {
	out := append([]Article(nil), articles...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// RecentArticles returns up to limit articles ordered by published
// date descending. The input slice is not modified.
func RecentArticles(articles []Article, limit int) []Article {
	out := append([]Article(nil), articles...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].PublishedDate > out[j].PublishedDate })
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// GroupBySection buckets articles by their section name.
func GroupBySection(articles []Article) map[string][]Article {
	groups := make(map[string][]Article)
	for _, a := range articles {
		groups[a.Section] = append(groups[a.Section], a)
	}
	return groups
}

// TotalViews sums the view counts of all articles.
func TotalViews(articles []Article) int64 {
	var total int64
	for _, a := range articles {
		total += a.Views
	}
	return total
}

// AverageViews returns the mean view count, or 0 for an empty list.
func AverageViews(articles []Article) float64 {
	if len(articles) == 0 {
		return 0
	}
	return float64(TotalViews(articles)) / float64(len(articles))
}

// Statistics summarizes a collection of articles.
type Statistics struct {
	TotalArticles     int      `json:"totalArticles"`
	TotalViews        int64    `json:"totalViews"`
	AverageViews      float64  `json:"averageViews"`
	ArticlesWithMedia int      `json:"articlesWithMedia"`
	Sections          []string `json:"sections"`
	TopArticle        *Article `json:"topArticle,omitempty"`
	MostRecentArticle *Article `json:"mostRecentArticle,omitempty"`
}

// ComputeStatistics derives summary statistics for the given articles.
func ComputeStatistics(articles []Article) Statistics {
	stats := Statistics{
		TotalArticles: len(articles),
		TotalViews:    TotalViews(articles),
		AverageViews:  AverageViews(articles),
		Sections:      ExtractSections(articles),
	}
	for i := range articles {
		a := articles[i]
		if a.HasMedia() {
			stats.ArticlesWithMedia++
		}
		if stats.TopArticle == nil || a.Views > stats.TopArticle.Views {
			stats.TopArticle = &articles[i]
		}
		if stats.MostRecentArticle == nil || a.PublishedDate > stats.MostRecentArticle.PublishedDate {
			stats.MostRecentArticle = &articles[i]
		}
	}
	return stats
}
