package router

import (
	"net/http"
	"strconv"

	"github.com/DjordjeVuckovic/news-popular/internal/apperr"
	"github.com/DjordjeVuckovic/news-popular/internal/domain"
	"github.com/DjordjeVuckovic/news-popular/internal/dto"
	"github.com/DjordjeVuckovic/news-popular/internal/resource"
	"github.com/DjordjeVuckovic/news-popular/internal/usecase"
	"github.com/labstack/echo/v4"
)

type ArticlesRouter struct {
	e        *echo.Echo
	popular  *usecase.GetMostPopularArticlesUseCase
	details  *usecase.GetArticleDetailsUseCase
	search   *usecase.SearchArticlesUseCase
	sections *usecase.GetSectionsUseCase
}

func NewArticlesRouter(
	e *echo.Echo,
	popular *usecase.GetMostPopularArticlesUseCase,
	details *usecase.GetArticleDetailsUseCase,
	search *usecase.SearchArticlesUseCase,
	sections *usecase.GetSectionsUseCase,
) *ArticlesRouter {
	return &ArticlesRouter{
		e:        e,
		popular:  popular,
		details:  details,
		search:   search,
		sections: sections,
	}
}

func (r *ArticlesRouter) Bind() {
	r.e.GET("/articles", r.listHandler)
	r.e.GET("/articles/search", r.searchHandler)
	r.e.GET("/articles/:id", r.detailsHandler)
	r.e.GET("/sections", r.sectionsHandler)
}

func (r *ArticlesRouter) listHandler(c echo.Context) error {
	filter := domain.ArticleFilter{
		Period:  domain.Period(c.QueryParam("period")),
		Section: c.QueryParam("section"),
		SortBy:  domain.SortBy(c.QueryParam("sort")),
	}

	if hasMedia := c.QueryParam("has_media"); hasMedia != "" {
		v, err := strconv.ParseBool(hasMedia)
		if err != nil {
			return apperr.NewValidation("has_media must be true or false")
		}
		filter.HasMedia = &v
	}

	ctx := c.Request().Context()
	stream := r.popular.Execute(ctx, usecase.GetMostPopularArticlesParams{Filter: filter})

	terminal := resource.Await(ctx, stream)
	if terminal.IsError() {
		return terminal.Err()
	}

	articles := terminal.Value()
	return c.JSON(http.StatusOK, dto.ArticleListResponse{
		Articles: dto.FromArticles(articles),
		Count:    len(articles),
		Period:   filter.WithDefaults().Period.Value(),
	})
}

func (r *ArticlesRouter) detailsHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apperr.NewValidation("article id must be a number")
	}

	ctx := c.Request().Context()
	terminal := resource.Await(ctx, r.details.Execute(ctx, usecase.GetArticleDetailsParams{ArticleID: id}))
	if terminal.IsError() {
		return terminal.Err()
	}

	return c.JSON(http.StatusOK, dto.FromArticle(terminal.Value()))
}

func (r *ArticlesRouter) searchHandler(c echo.Context) error {
	query := c.QueryParam("query")

	ctx := c.Request().Context()
	terminal := resource.Await(ctx, r.search.Execute(ctx, usecase.SearchArticlesParams{Query: query}))
	if terminal.IsError() {
		return terminal.Err()
	}

	resp := dto.NewSearchResponse(query, terminal.Value(), func(a domain.Article) int {
		return usecase.Score(a, query)
	})
	return c.JSON(http.StatusOK, resp)
}

func (r *ArticlesRouter) sectionsHandler(c echo.Context) error {
	ctx := c.Request().Context()
	terminal := resource.Await(ctx, r.sections.Execute(ctx))
	if terminal.IsError() {
		return terminal.Err()
	}

	sections := terminal.Value()
	return c.JSON(http.StatusOK, dto.SectionsResponse{
		Sections: sections,
		Count:    len(sections),
	})
}
