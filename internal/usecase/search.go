package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/DjordjeVuckovic/news-popular/internal/apperr"
	"github.com/DjordjeVuckovic/news-popular/internal/domain"
	"github.com/DjordjeVuckovic/news-popular/internal/repository"
	"github.com/DjordjeVuckovic/news-popular/internal/resource"
)

// MinQueryLength is the shortest accepted search query.
const MinQueryLength = 2

// Field weights for relevance scoring. A match in a heavier field
// dominates any combination of lighter ones.
const (
	titleWeight    = 10
	abstractWeight = 5
	sectionWeight  = 2
	keywordsWeight = 1
)

type SearchArticlesParams struct {
	Query string
}

type SearchArticlesUseCase struct {
	repo repository.ArticlesRepository
}

func NewSearchArticlesUseCase(repo repository.ArticlesRepository) *SearchArticlesUseCase {
	return &SearchArticlesUseCase{repo: repo}
}

// Execute validates the query, searches the cached set and ranks the
// matches by relevance. Too-short queries fail fast without reaching
// the repository.
func (uc *SearchArticlesUseCase) Execute(ctx context.Context, params SearchArticlesParams) resource.Stream[[]domain.Article] {
	query := strings.TrimSpace(params.Query)
	if len(query) < MinQueryLength {
		return resource.Fail[[]domain.Article](apperr.NewValidation(
			"search query must be at least 2 characters"))
	}

	return resource.MapStream(uc.repo.SearchArticles(ctx, query), func(articles []domain.Article) []domain.Article {
		return RankArticles(articles, query)
	})
}

// Score sums the weights of every field containing the query,
// case-insensitive: title 10, abstract 5, section 2, keywords 1.
func Score(a domain.Article, query string) int {
	q := strings.ToLower(query)
	score := 0
	if strings.Contains(strings.ToLower(a.Title), q) {
		score += titleWeight
	}
	if strings.Contains(strings.ToLower(a.Abstract), q) {
		score += abstractWeight
	}
	if strings.Contains(strings.ToLower(a.Section), q) {
		score += sectionWeight
	}
	if strings.Contains(strings.ToLower(a.AdxKeywords), q) {
		score += keywordsWeight
	}
	return score
}

// RankArticles orders articles by descending relevance score. Ties
// keep their original order. The input slice is not modified.
func RankArticles(articles []domain.Article, query string) []domain.Article {
	type scored struct {
		article domain.Article
		score   int
	}

	ranked := make([]scored, len(articles))
	for i, a := range articles {
		ranked[i] = scored{article: a, score: Score(a, query)}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	out := make([]domain.Article, len(ranked))
	for i, s := range ranked {
		out[i] = s.article
	}
	return out
}
