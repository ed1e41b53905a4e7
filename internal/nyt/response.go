package nyt

// Wire types for the most-popular endpoint. The shape is externally
// owned; field names follow the published JSON contract.

type Response struct {
	Status     string       `json:"status"`
	Copyright  string       `json:"copyright"`
	NumResults int          `json:"num_results"`
	Results    []ArticleDTO `json:"results"`
}

type ArticleDTO struct {
	ID            int64      `json:"id"`
	URL           string     `json:"url"`
	AdxKeywords   string     `json:"adx_keywords"`
	Column        string     `json:"column"`
	Section       string     `json:"section"`
	Byline        string     `json:"byline"`
	Type          string     `json:"type"`
	Title         string     `json:"title"`
	Abstract      string     `json:"abstract"`
	PublishedDate string     `json:"published_date"`
	Source        string     `json:"source"`
	Views         int64      `json:"views"`
	Media         []MediaDTO `json:"media"`
	EtaID         int64      `json:"eta_id"`
}

type MediaDTO struct {
	Type                   string             `json:"type"`
	Subtype                string             `json:"subtype"`
	Caption                string             `json:"caption"`
	Copyright              string             `json:"copyright"`
	ApprovedForSyndication int                `json:"approved_for_syndication"`
	MediaMetadata          []MediaMetadataDTO `json:"media-metadata"`
}

type MediaMetadataDTO struct {
	URL    string `json:"url"`
	Format string `json:"format"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}
