package models

// ContentMetadata carries provenance for a support document.
type ContentMetadata struct {
	Source      string `bson:"source" json:"source"`
	LastUpdated string `bson:"last_updated" json:"lastUpdated"`
	URL         string `bson:"url,omitempty" json:"url,omitempty"`
}

// SupportContent is one indexed support document. Vector is the embedding of
// Content and is never returned from search projections.
type SupportContent struct {
	ID       string          `bson:"id" json:"id"`
	Title    string          `bson:"title" json:"title"`
	Content  string          `bson:"content" json:"content"`
	Category string          `bson:"category" json:"category"`
	Tags     []string        `bson:"tags" json:"tags"`
	Vector   []float32       `bson:"vector,omitempty" json:"-"`
	Metadata ContentMetadata `bson:"metadata" json:"metadata"`
}
