package nyt

import (
	"log/slog"

	"github.com/DjordjeVuckovic/news-popular/internal/domain"
)

// MapArticles converts a wire response into domain articles. The
// decoding policy is lenient: a non-"OK" status or an empty result set
// maps to an empty list rather than an error, and individually invalid
// entries are dropped instead of failing the whole batch.
func MapArticles(resp *Response) []domain.Article {
	if resp == nil || resp.Status != "OK" {
		return []domain.Article{}
	}

	articles := make([]domain.Article, 0, len(resp.Results))
	for _, dto := range resp.Results {
		article := mapArticle(dto)
		if !article.IsValid() {
			slog.Debug("Dropping invalid article entry", "id", dto.ID, "title", dto.Title)
			continue
		}
		articles = append(articles, article)
	}
	return articles
}

func mapArticle(dto ArticleDTO) domain.Article {
	views := dto.Views
	if views < 0 {
		views = 0
	}
	return domain.Article{
		ID:            dto.ID,
		URL:           dto.URL,
		AdxKeywords:   dto.AdxKeywords,
		Column:        dto.Column,
		Section:       dto.Section,
		Byline:        dto.Byline,
		Type:          dto.Type,
		Title:         dto.Title,
		Abstract:      dto.Abstract,
		PublishedDate: dto.PublishedDate,
		Source:        dto.Source,
		Views:         views,
		Media:         mapMedia(dto.Media),
		EtaID:         dto.EtaID,
	}
}

func mapMedia(dtos []MediaDTO) []domain.Media {
	if len(dtos) == 0 {
		return nil
	}
	media := make([]domain.Media, 0, len(dtos))
	for _, dto := range dtos {
		media = append(media, domain.Media{
			Type:                   dto.Type,
			Subtype:                dto.Subtype,
			Caption:                dto.Caption,
			Copyright:              dto.Copyright,
			ApprovedForSyndication: dto.ApprovedForSyndication,
			Metadata:               mapMediaMetadata(dto.MediaMetadata),
		})
	}
	return media
}

func mapMediaMetadata(dtos []MediaMetadataDTO) []domain.MediaMetadata {
	if len(dtos) == 0 {
		return nil
	}
	metadata := make([]domain.MediaMetadata, 0, len(dtos))
	for _, dto := range dtos {
		height := dto.Height
		if height < 0 {
			height = 0
		}
		width := dto.Width
		if width < 0 {
			width = 0
		}
		metadata = append(metadata, domain.MediaMetadata{
			URL:    dto.URL,
			Format: dto.Format,
			Height: height,
			Width:  width,
		})
	}
	return metadata
}
