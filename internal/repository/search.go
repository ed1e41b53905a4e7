package repository

import (
	"strings"

	"github.com/DjordjeVuckovic/news-popular/internal/domain"
)

// searchArticles keeps articles containing the query, case-insensitive,
// in any of the fields the ranking layer scores: title, abstract,
// section and keywords. Order is preserved; ranking happens upstream.
func searchArticles(articles []domain.Article, query string) []domain.Article {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []domain.Article{}
	}

	out := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if matchesQuery(a, q) {
			out = append(out, a)
		}
	}
	return out
}

func matchesQuery(a domain.Article, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(a.Title), loweredQuery) ||
		strings.Contains(strings.ToLower(a.Abstract), loweredQuery) ||
		strings.Contains(strings.ToLower(a.Section), loweredQuery) ||
		strings.Contains(strings.ToLower(a.AdxKeywords), loweredQuery)
}
