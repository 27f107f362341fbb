package server

import (
	"github.com/orgball2608/mini-insta/internal/domain"
)

type profileView struct {
	*domain.Profile
	FollowerCount  int         `json:"follower_count"`
	FollowingCount int         `json:"following_count"`
	IsFollowed     bool        `json:"is_followed"`
	IsOwn          bool        `json:"is_own"`
	Posts          []*postView `json:"posts,omitempty"`
}

type postView struct {
	*domain.Post
	Photos []*domain.Photo `json:"photos"`
}

type postDetailView struct {
	*domain.Post
	Photos     []*domain.Photo    `json:"photos"`
	Comments   []*domain.Comment  `json:"comments"`
	Engagement *domain.Engagement `json:"engagement"`
	LikedBy    string             `json:"liked_by,omitempty"`
	HasLiked   bool               `json:"has_liked"`
}

type followView struct {
	ProfileID     int64 `json:"profile_id"`
	Following     bool  `json:"following"`
	FollowerCount int   `json:"follower_count"`
}

func postViews(posts []*domain.Post, photos map[int64][]*domain.Photo) []*postView {
	out := make([]*postView, 0, len(posts))
	for _, p := range posts {
		ph := photos[p.ID]
		if ph == nil {
			ph = []*domain.Photo{}
		}
		out = append(out, &postView{Post: p, Photos: ph})
	}
	return out
}

func postIDs(posts []*domain.Post) []int64 {
	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}
