package domain

import "time"

type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	ProfileID int64     `json:"profile_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
