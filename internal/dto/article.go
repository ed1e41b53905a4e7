package dto

import (
	"github.com/DjordjeVuckovic/news-popular/internal/domain"
	"github.com/DjordjeVuckovic/news-popular/pkg/utils"
)

type ArticleResponse struct {
	ID            int64  `json:"id"`
	URL           string `json:"url"`
	Title         string `json:"title"`
	Abstract      string `json:"abstract"`
	Section       string `json:"section"`
	Byline        string `json:"byline"`
	PublishedDate string `json:"published_date"`
	Source        string `json:"source"`
	Views         int64  `json:"views"`
	ImageURL      string `json:"image_url,omitempty"`
}

func FromArticle(a domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:            a.ID,
		URL:           a.URL,
		Title:         a.Title,
		Abstract:      a.Abstract,
		Section:       a.Section,
		Byline:        a.FormattedByline(),
		PublishedDate: a.PublishedDate,
		Source:        a.Source,
		Views:         a.Views,
		ImageURL:      a.PrimaryImageURL(),
	}
}

func FromArticles(articles []domain.Article) []ArticleResponse {
	out := make([]ArticleResponse, len(articles))
	for i, a := range articles {
		out[i] = FromArticle(a)
	}
	return out
}

type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Count    int               `json:"count"`
	Period   string            `json:"period,omitempty"`
}

type SearchHit struct {
	ArticleResponse
	Score           int     `json:"score"`
	ScoreNormalized float64 `json:"score_normalized"`
}

type SearchResponse struct {
	Query string      `json:"query"`
	Hits  []SearchHit `json:"hits"`
	Count int         `json:"count"`
}

// NewSearchResponse attaches relevance scores to ranked articles. The
// normalized score divides by the top score so the first hit is 1.0.
func NewSearchResponse(query string, articles []domain.Article, score func(domain.Article) int) SearchResponse {
	hits := make([]SearchHit, len(articles))
	top := 0
	for i, a := range articles {
		s := score(a)
		if i == 0 {
			top = s
		}
		hits[i] = SearchHit{ArticleResponse: FromArticle(a), Score: s}
	}
	for i := range hits {
		if top > 0 {
			hits[i].ScoreNormalized = utils.RoundDecimal(float64(hits[i].Score)/float64(top), 2)
		}
	}
	return SearchResponse{Query: query, Hits: hits, Count: len(hits)}
}

type SectionsResponse struct {
	Sections []string `json:"sections"`
	Count    int      `json:"count"`
}
