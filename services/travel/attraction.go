package travel

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// AttractionSearchParams are the inputs to an attraction search.
type AttractionSearchParams struct {
	Location string  `json:"location"`
	Category string  `json:"category,omitempty"`
	Rating   float64 `json:"rating,omitempty"`
	Radius   int     `json:"radius,omitempty"`
}

// AttractionReview is one visitor review.
type AttractionReview struct {
	ID      string  `json:"id"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
	Author  string  `json:"author"`
	Date    string  `json:"date"`
}

// Attraction is one point of interest returned by the attractions API.
type Attraction struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Category      string             `json:"category"`
	Description   string             `json:"description"`
	Address       string             `json:"address"`
	Rating        float64            `json:"rating"`
	PriceLevel    string             `json:"priceLevel"`
	OpeningHours  map[string]string  `json:"openingHours"`
	TicketPrice   float64            `json:"ticketPrice"`
	EstimatedTime string             `json:"estimatedTime"`
	Images        []string           `json:"images"`
	Reviews       []AttractionReview `json:"reviews"`
}

// AttractionClient calls the attractions API.
type AttractionClient struct {
	api apiClient
}

func NewAttractionClient(apiKey, baseURL string) *AttractionClient {
	return &AttractionClient{api: newAPIClient(baseURL, apiKey)}
}

// SearchAttractions returns the attractions matching params, unmodified.
func (c *AttractionClient) SearchAttractions(ctx context.Context, params AttractionSearchParams) ([]Attraction, error) {
	query := url.Values{}
	query.Set("location", params.Location)
	if params.Category != "" {
		query.Set("category", params.Category)
	}
	if params.Rating > 0 {
		query.Set("rating", strconv.FormatFloat(params.Rating, 'f', -1, 64))
	}
	if params.Radius > 0 {
		query.Set("radius", strconv.Itoa(params.Radius))
	}

	var resp struct {
		Attractions []Attraction `json:"attractions"`
	}
	if err := c.api.getJSON(ctx, "/attractions/search", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to search attractions: %w", err)
	}
	return resp.Attractions, nil
}

// GetAttractionDetails fetches one attraction by ID.
func (c *AttractionClient) GetAttractionDetails(ctx context.Context, attractionID string) (*Attraction, error) {
	var attraction Attraction
	if err := c.api.getJSON(ctx, "/attractions/"+attractionID, nil, &attraction); err != nil {
		return nil, fmt.Errorf("failed to fetch attraction details: %w", err)
	}
	return &attraction, nil
}

// GetTopAttractions returns the highest rated attractions for a location.
func (c *AttractionClient) GetTopAttractions(ctx context.Context, location string, limit int) ([]Attraction, error) {
	query := url.Values{}
	query.Set("location", location)
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var resp struct {
		Attractions []Attraction `json:"attractions"`
	}
	if err := c.api.getJSON(ctx, "/attractions/top", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch top attractions: %w", err)
	}
	return resp.Attractions, nil
}

// GetNearbyAttractions lists attractions within radius meters of another one.
func (c *AttractionClient) GetNearbyAttractions(ctx context.Context, attractionID string, radius int) ([]Attraction, error) {
	query := url.Values{}
	if radius > 0 {
		query.Set("radius", strconv.Itoa(radius))
	}

	var resp struct {
		Attractions []Attraction `json:"attractions"`
	}
	if err := c.api.getJSON(ctx, "/attractions/"+attractionID+"/nearby", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch nearby attractions: %w", err)
	}
	return resp.Attractions, nil
}

// GetAttractionReviews fetches visitor reviews for an attraction.
func (c *AttractionClient) GetAttractionReviews(ctx context.Context, attractionID string, limit int) ([]AttractionReview, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var resp struct {
		Reviews []AttractionReview `json:"reviews"`
	}
	if err := c.api.getJSON(ctx, "/attractions/"+attractionID+"/reviews", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch attraction reviews: %w", err)
	}
	return resp.Reviews, nil
}
