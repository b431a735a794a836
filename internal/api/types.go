package api

import "time"

// Endpoint paths served by the Relax web application.
const (
	QuotePath  = "/api/quote"
	GifPath    = "/api/gif"
	MemePath   = "/api/meme"
	HealthPath = "/api/health"
)

// SourceGiphy marks media that must carry the GIPHY attribution badge.
const SourceGiphy = "giphy"

// Quote is a motivational quote. Author may be empty.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
	// Source names the upstream provider (quotable, zenquotes, local).
	Source string `json:"source,omitempty"`
}

// Media is a gif or meme image reference.
type Media struct {
	URL    string `json:"url"`
	Title  string `json:"title,omitempty"`
	Source string `json:"source,omitempty"`
}

// IsGiphy reports whether the media came from GIPHY.
func (m Media) IsGiphy() bool {
	return m.Source == SourceGiphy
}

// Health is the payload of the health endpoint.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// Timeouts bound each request; zero values fall back to the defaults.
type Timeouts struct {
	Quote time.Duration
	Media time.Duration
}
