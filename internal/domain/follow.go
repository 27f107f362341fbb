package domain

import "time"

// Follow is a directed edge: FollowerID follows ProfileID.
type Follow struct {
	ID         int64     `json:"id"`
	ProfileID  int64     `json:"profile_id"`
	FollowerID int64     `json:"follower_id"`
	CreatedAt  time.Time `json:"created_at"`
}
