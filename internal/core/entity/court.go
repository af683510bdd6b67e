package entity

import "time"

// Court represents a federal district. CourtCode is the value carried in the
// X-Court-District header and is the tenant boundary for every other entity
// in this package.
type Court struct {
	ID        string    `json:"id"`
	CourtName string    `json:"courtName"`
	CourtCode string    `json:"courtCode"`
	CreatedAt time.Time `json:"createdAt"`
}
