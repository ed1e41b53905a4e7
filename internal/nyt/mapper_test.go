package nyt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDTO(id int64, title string) ArticleDTO {
	return ArticleDTO{
		ID:            id,
		URL:           "https://example.com/a",
		Section:       "World",
		Byline:        "By Someone",
		Title:         title,
		Abstract:      "abstract",
		PublishedDate: "2025-05-30",
		Views:         100,
	}
}

func TestMapArticles_MapsFields(t *testing.T) {
	resp := &Response{
		Status: "OK",
		Results: []ArticleDTO{
			{
				ID:            1,
				URL:           "https://example.com/one",
				AdxKeywords:   "Economy",
				Section:       "Business",
				Byline:        "By Jane Doe",
				Title:         "Markets Rally",
				Abstract:      "Stocks climbed.",
				PublishedDate: "2025-05-30",
				Source:        "New York Times",
				Views:         12000,
				Media: []MediaDTO{
					{
						Type:                   "image",
						ApprovedForSyndication: 1,
						MediaMetadata: []MediaMetadataDTO{
							{URL: "https://example.com/small.jpg", Format: "thumb", Height: 75, Width: 75},
							{URL: "https://example.com/large.jpg", Format: "large", Height: 293, Width: 440},
						},
					},
				},
			},
		},
	}

	articles := MapArticles(resp)

	require.Len(t, articles, 1)
	a := articles[0]
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, "Markets Rally", a.Title)
	assert.Equal(t, "Jane Doe", a.FormattedByline())
	assert.True(t, a.HasMedia())
	assert.Equal(t, "https://example.com/large.jpg", a.PrimaryImageURL())
	assert.True(t, a.Media[0].Metadata[0].HasValidSize())
}

func TestMapArticles_DropsInvalidEntries(t *testing.T) {
	resp := &Response{
		Status: "OK",
		Results: []ArticleDTO{
			validDTO(1, "First"),
			{ID: 0, URL: "https://example.com/x", Title: "Missing id"},
			validDTO(2, "Second"),
			{ID: 3, URL: "https://example.com/y", Title: "   "},
			validDTO(4, "Third"),
		},
	}

	articles := MapArticles(resp)

	require.Len(t, articles, 3)
	assert.Equal(t, "First", articles[0].Title)
	assert.Equal(t, "Second", articles[1].Title)
	assert.Equal(t, "Third", articles[2].Title)
}

func TestMapArticles_NonOKStatusYieldsEmptyList(t *testing.T) {
	resp := &Response{
		Status:  "ERROR",
		Results: []ArticleDTO{validDTO(1, "Ignored")},
	}

	articles := MapArticles(resp)

	assert.NotNil(t, articles)
	assert.Empty(t, articles)
}

func TestMapArticles_EmptyResultsYieldEmptyList(t *testing.T) {
	articles := MapArticles(&Response{Status: "OK"})

	assert.NotNil(t, articles)
	assert.Empty(t, articles)
}

func TestMapArticles_ClampsNegativeValues(t *testing.T) {
	dto := validDTO(1, "Clamped")
	dto.Views = -5
	dto.Media = []MediaDTO{{MediaMetadata: []MediaMetadataDTO{{Height: -1, Width: -2}}}}

	articles := MapArticles(&Response{Status: "OK", Results: []ArticleDTO{dto}})

	require.Len(t, articles, 1)
	assert.Equal(t, int64(0), articles[0].Views)
	assert.Equal(t, 0, articles[0].Media[0].Metadata[0].Height)
	assert.Equal(t, 0, articles[0].Media[0].Metadata[0].Width)
	assert.False(t, articles[0].Media[0].Metadata[0].HasValidSize())
}
