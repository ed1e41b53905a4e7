// Package usecase holds the thin orchestration layer: synchronous
// parameter validation, exactly one repository call, and optional
// post-processing of the success payload.
package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/DjordjeVuckovic/news-popular/internal/apperr"
	"github.com/DjordjeVuckovic/news-popular/internal/domain"
	"github.com/DjordjeVuckovic/news-popular/internal/repository"
	"github.com/DjordjeVuckovic/news-popular/internal/resource"
)

type GetMostPopularArticlesParams struct {
	Filter domain.ArticleFilter
}

type GetMostPopularArticlesUseCase struct {
	repo repository.ArticlesRepository
}

func NewGetMostPopularArticlesUseCase(repo repository.ArticlesRepository) *GetMostPopularArticlesUseCase {
	return &GetMostPopularArticlesUseCase{repo: repo}
}

// Execute validates the filter, fetches the period's articles and
// post-processes the success payload. Invalid parameters fail fast
// through the stream's error channel without touching the repository.
func (uc *GetMostPopularArticlesUseCase) Execute(ctx context.Context, params GetMostPopularArticlesParams) resource.Stream[[]domain.Article] {
	filter := params.Filter.WithDefaults()

	if !filter.Period.IsValid() {
		return resource.Fail[[]domain.Article](apperr.NewValidation(
			fmt.Sprintf("invalid period %q: must be one of 1, 7 or 30", string(filter.Period))))
	}
	if !filter.SortBy.IsValid() {
		return resource.Fail[[]domain.Article](apperr.NewValidation(
			fmt.Sprintf("invalid sort order %q", string(filter.SortBy))))
	}

	return resource.MapStream(uc.repo.GetMostPopular(ctx, filter.Period), func(articles []domain.Article) []domain.Article {
		return ApplyFilters(articles, filter)
	})
}

// ApplyFilters narrows and orders articles: section filter first, then
// media filter, then a stable sort in the requested order. The input
// slice is not modified.
func ApplyFilters(articles []domain.Article, filter domain.ArticleFilter) []domain.Article {
	filtered := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if filter.Section != "" && !strings.EqualFold(a.Section, filter.Section) {
			continue
		}
		if filter.HasMedia != nil && a.HasMedia() != *filter.HasMedia {
			continue
		}
		filtered = append(filtered, a)
	}

	sort.SliceStable(filtered, lessFunc(filtered, filter.SortBy))
	return filtered
}

func lessFunc(articles []domain.Article, sortBy domain.SortBy) func(i, j int) bool {
	switch sortBy {
	case domain.SortByViewsAsc:
		return func(i, j int) bool { return articles[i].Views < articles[j].Views }
	case domain.SortByDateDesc:
		return func(i, j int) bool { return articles[i].PublishedDate > articles[j].PublishedDate }
	case domain.SortByDateAsc:
		return func(i, j int) bool { return articles[i].PublishedDate < articles[j].PublishedDate }
	case domain.SortByTitleAsc:
		return func(i, j int) bool { return articles[i].Title < articles[j].Title }
	case domain.SortByTitleDesc:
		return func(i, j int) bool { return articles[i].Title > articles[j].Title }
	default:
		return func(i, j int) bool { return articles[i].Views > articles[j].Views }
	}
}
