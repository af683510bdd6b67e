package dto

import "time"

// CourtResponse represents a court district in API responses.
type CourtResponse struct {
	ID        string    `json:"id"`
	CourtName string    `json:"courtName"`
	CourtCode string    `json:"courtCode"`
	CreatedAt time.Time `json:"createdAt"`
}

// CourtListResponse wraps the admin court listing.
type CourtListResponse struct {
	Data []*CourtResponse `json:"data"`
}
