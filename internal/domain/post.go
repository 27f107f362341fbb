package domain

import "time"

type Post struct {
	ID        int64     `json:"id"`
	ProfileID int64     `json:"profile_id"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"created_at"`
}

// NewerThan orders posts newest first; equal timestamps keep insertion order.
func (p *Post) NewerThan(other *Post) bool {
	if !p.CreatedAt.Equal(other.CreatedAt) {
		return p.CreatedAt.After(other.CreatedAt)
	}
	return p.ID < other.ID
}
