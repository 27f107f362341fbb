package domain

import "time"

type Like struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	ProfileID int64     `json:"profile_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Engagement aggregates the like and comment figures of one post.
type Engagement struct {
	PostID         int64 `json:"post_id"`
	LikeCount      int   `json:"like_count"`
	CommentCount   int   `json:"comment_count"`
	MostRecentLike *Like `json:"most_recent_like,omitempty"`
}
