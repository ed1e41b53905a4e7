// Package repository orchestrates the remote fetch, the TTL cache and
// the response mapping behind resource streams.
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/news-popular/internal/apperr"
	"github.com/DjordjeVuckovic/news-popular/internal/cache"
	"github.com/DjordjeVuckovic/news-popular/internal/domain"
	"github.com/DjordjeVuckovic/news-popular/internal/nyt"
	"github.com/DjordjeVuckovic/news-popular/internal/resource"
)

const mostPopularOp = "most_popular"

// ArticlesRepository exposes the core read operations. GetMostPopular
// is the only operation that reaches the network; the rest are scoped
// to whatever a prior fetch left in the cache and never fetch
// implicitly.
type ArticlesRepository interface {
	GetMostPopular(ctx context.Context, period domain.Period) resource.Stream[[]domain.Article]
	GetArticleByID(ctx context.Context, id int64) resource.Stream[domain.Article]
	SearchArticles(ctx context.Context, query string) resource.Stream[[]domain.Article]
	GetArticlesBySection(ctx context.Context, section string) resource.Stream[[]domain.Article]
	AvailableSections(ctx context.Context) resource.Stream[[]string]
}

// Fetcher is the single remote operation the repository depends on.
type Fetcher interface {
	FetchMostPopular(ctx context.Context, period domain.Period) (*nyt.Response, error)
}

type CachedArticlesRepository struct {
	fetcher Fetcher
	cache   *cache.ArticleCache
}

func NewCachedArticlesRepository(fetcher Fetcher, articleCache *cache.ArticleCache) *CachedArticlesRepository {
	return &CachedArticlesRepository{
		fetcher: fetcher,
		cache:   articleCache,
	}
}

// GetMostPopular serves a fresh cache entry directly, otherwise wraps
// the remote call in the resource pipeline. The cache is written only
// on success; a failed fetch leaves any stale entry in place for a
// later attempt.
func (r *CachedArticlesRepository) GetMostPopular(ctx context.Context, period domain.Period) resource.Stream[[]domain.Article] {
	key := cache.Key{Operation: mostPopularOp, Period: period}
	if articles, ok := r.cache.Get(key); ok {
		slog.Debug("Serving most popular articles from cache", "period", period.Value(), "count", len(articles))
		return resource.Just(articles)
	}

	return resource.Go(ctx, func(ctx context.Context) ([]domain.Article, error) {
		resp, err := r.fetcher.FetchMostPopular(ctx, period)
		if err != nil {
			return nil, err
		}
		articles := nyt.MapArticles(resp)
		r.cache.Put(key, articles)
		slog.Debug("Cached most popular articles", "period", period.Value(), "count", len(articles))
		return articles, nil
	})
}

// GetArticleByID looks the article up in the cached result sets. A
// cold cache or an unknown id reports not found; no fetch is issued.
func (r *CachedArticlesRepository) GetArticleByID(ctx context.Context, id int64) resource.Stream[domain.Article] {
	article, ok := domain.FindByID(r.cachedArticles(), id)
	if !ok {
		return resource.Fail[domain.Article](apperr.New(apperr.KindNotFound,
			fmt.Sprintf("article %d not found in cached results", id)))
	}
	return resource.Just(article)
}

// SearchArticles matches the query against the cached article set.
// Search is cache-scoped by design: an empty cache yields an empty
// result, not a fetch.
func (r *CachedArticlesRepository) SearchArticles(ctx context.Context, query string) resource.Stream[[]domain.Article] {
	return resource.Just(searchArticles(r.cachedArticles(), query))
}

// GetArticlesBySection filters the cached article set by section name,
// ignoring case.
func (r *CachedArticlesRepository) GetArticlesBySection(ctx context.Context, section string) resource.Stream[[]domain.Article] {
	return resource.Just(domain.FilterBySection(r.cachedArticles(), section))
}

// AvailableSections lists the distinct sections of the cached article
// set, sorted alphabetically.
func (r *CachedArticlesRepository) AvailableSections(ctx context.Context) resource.Stream[[]string] {
	return resource.Just(domain.ExtractSections(r.cachedArticles()))
}

// cachedArticles merges the fresh entries of every period, shortest
// first, deduplicated by article id so overlapping windows do not
// repeat entries.
func (r *CachedArticlesRepository) cachedArticles() []domain.Article {
	var out []domain.Article
	seen := make(map[int64]struct{})
	for _, period := range domain.AllPeriods() {
		articles, ok := r.cache.Get(cache.Key{Operation: mostPopularOp, Period: period})
		if !ok {
			continue
		}
		for _, a := range articles {
			if _, dup := seen[a.ID]; dup {
				continue
			}
			seen[a.ID] = struct{}{}
			out = append(out, a)
		}
	}
	return out
}
