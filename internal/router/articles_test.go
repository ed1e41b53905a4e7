package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/news-popular/internal/apperr"
	"github.com/DjordjeVuckovic/news-popular/internal/cache"
	"github.com/DjordjeVuckovic/news-popular/internal/domain"
	"github.com/DjordjeVuckovic/news-popular/internal/dto"
	"github.com/DjordjeVuckovic/news-popular/internal/nyt"
	"github.com/DjordjeVuckovic/news-popular/internal/repository"
	"github.com/DjordjeVuckovic/news-popular/internal/usecase"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	resp  *nyt.Response
	err   error
	calls int
}

func (f *stubFetcher) FetchMostPopular(ctx context.Context, period domain.Period) (*nyt.Response, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func stubResponse() *nyt.Response {
	return &nyt.Response{
		Status:     "OK",
		NumResults: 2,
		Results: []nyt.ArticleDTO{
			{ID: 1, URL: "https://example.com/a", Title: "Quiet Gardens", Section: "Home", Views: 50},
			{ID: 2, URL: "https://example.com/b", Title: "Rising Markets", Section: "Business", Views: 200,
				Abstract: "markets climbed again"},
		},
	}
}

func newTestServer(t *testing.T, fetcher repository.Fetcher) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()

	repo := repository.NewCachedArticlesRepository(fetcher, cache.New(cache.DefaultTTL, nil))
	r := NewArticlesRouter(
		e,
		usecase.NewGetMostPopularArticlesUseCase(repo),
		usecase.NewGetArticleDetailsUseCase(repo),
		usecase.NewSearchArticlesUseCase(repo),
		usecase.NewGetSectionsUseCase(repo),
	)
	r.Bind()

	return e
}

func doRequest(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestListArticles_ReturnsSortedList(t *testing.T) {
	e := newTestServer(t, &stubFetcher{resp: stubResponse()})

	rec := doRequest(e, "/articles")

	require.Equal(t, http.StatusOK, rec.Code)
	var body dto.ArticleListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 2, body.Count)
	assert.Equal(t, "7", body.Period)
	assert.Equal(t, int64(2), body.Articles[0].ID, "highest views first by default")
	assert.Equal(t, int64(1), body.Articles[1].ID)
}

func TestListArticles_InvalidPeriodIsBadRequest(t *testing.T) {
	fetcher := &stubFetcher{resp: stubResponse()}
	e := newTestServer(t, fetcher)

	rec := doRequest(e, "/articles?period=14")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, fetcher.calls, "invalid period must not reach the network")
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, string(apperr.KindValidation), body["kind"])
}

func TestListArticles_InvalidHasMediaIsBadRequest(t *testing.T) {
	e := newTestServer(t, &stubFetcher{resp: stubResponse()})

	rec := doRequest(e, "/articles?has_media=maybe")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListArticles_UpstreamFailureIsBadGateway(t *testing.T) {
	e := newTestServer(t, &stubFetcher{err: apperr.New(apperr.KindServer, "upstream returned 503")})

	rec := doRequest(e, "/articles")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestArticleDetails(t *testing.T) {
	e := newTestServer(t, &stubFetcher{resp: stubResponse()})

	// warm the cache first; details are served from cached results
	require.Equal(t, http.StatusOK, doRequest(e, "/articles").Code)

	rec := doRequest(e, "/articles/2")

	require.Equal(t, http.StatusOK, rec.Code)
	var body dto.ArticleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Rising Markets", body.Title)
}

func TestArticleDetails_UnknownIDIsNotFound(t *testing.T) {
	e := newTestServer(t, &stubFetcher{resp: stubResponse()})
	require.Equal(t, http.StatusOK, doRequest(e, "/articles").Code)

	rec := doRequest(e, "/articles/999")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestArticleDetails_NonNumericIDIsBadRequest(t *testing.T) {
	e := newTestServer(t, &stubFetcher{resp: stubResponse()})

	rec := doRequest(e, "/articles/abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchArticles_ScoresHits(t *testing.T) {
	e := newTestServer(t, &stubFetcher{resp: stubResponse()})
	require.Equal(t, http.StatusOK, doRequest(e, "/articles").Code)

	rec := doRequest(e, "/articles/search?query=markets")

	require.Equal(t, http.StatusOK, rec.Code)
	var body dto.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "Rising Markets", body.Hits[0].Title)
	assert.Equal(t, 15, body.Hits[0].Score, "title and abstract both match")
	assert.Equal(t, 1.0, body.Hits[0].ScoreNormalized)
}

func TestSearchArticles_ShortQueryIsBadRequest(t *testing.T) {
	e := newTestServer(t, &stubFetcher{resp: stubResponse()})

	rec := doRequest(e, "/articles/search?query=a")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSections(t *testing.T) {
	e := newTestServer(t, &stubFetcher{resp: stubResponse()})
	require.Equal(t, http.StatusOK, doRequest(e, "/articles").Code)

	rec := doRequest(e, "/sections")

	require.Equal(t, http.StatusOK, rec.Code)
	var body dto.SectionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"Business", "Home"}, body.Sections)
}
