package domain

import "strings"

// Article is a single entry of the most-popular feed. Instances are
// built by the response mapper and never mutated afterwards.
type Article struct {
	ID            int64   `json:"id"`
	URL           string  `json:"url"`
	AdxKeywords   string  `json:"adxKeywords,omitempty"`
	Column        string  `json:"column,omitempty"`
	Section       string  `json:"section"`
	Byline        string  `json:"byline"`
	Type          string  `json:"type"`
	Title         string  `json:"title"`
	Abstract      string  `json:"abstract"`
	PublishedDate string  `json:"publishedDate"`
	Source        string  `json:"source"`
	Views         int64   `json:"views"`
	Media         []Media `json:"media"`
	EtaID         int64   `json:"etaId,omitempty"`
}

// Media is one media attachment of an article, owned by the article
// that contains it.
type Media struct {
	Type                   string          `json:"type"`
	Subtype                string          `json:"subtype,omitempty"`
	Caption                string          `json:"caption,omitempty"`
	Copyright              string          `json:"copyright,omitempty"`
	ApprovedForSyndication int             `json:"approvedForSyndication"`
	Metadata               []MediaMetadata `json:"metadata"`
}

// MediaMetadata is a single rendition of a media attachment.
type MediaMetadata struct {
	URL    string `json:"url"`
	Format string `json:"format"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// HasValidSize reports whether both dimensions are strictly positive.
func (m MediaMetadata) HasValidSize() bool {
	return m.Width > 0 && m.Height > 0
}

// IsValid reports whether the article carries the required fields:
// a non-zero id and a non-blank title and url.
func (a Article) IsValid() bool {
	return a.ID != 0 && strings.TrimSpace(a.Title) != "" && strings.TrimSpace(a.URL) != ""
}

func (a Article) HasMedia() bool {
	return len(a.Media) > 0
}

// PrimaryImageURL returns the largest rendition of the first media
// attachment, or "" when the article has no media. Renditions are
// ordered smallest to largest on the wire.
func (a Article) PrimaryImageURL() string {
	if len(a.Media) == 0 {
		return ""
	}
	metadata := a.Media[0].Metadata
	if len(metadata) == 0 {
		return ""
	}
	return metadata[len(metadata)-1].URL
}

// FormattedByline returns the byline without the leading "By " prefix.
func (a Article) FormattedByline() string {
	return strings.TrimPrefix(a.Byline, "By ")
}
