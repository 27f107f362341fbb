package domain

import "time"

// Profile is the user facing record attached to an authentication account.
type Profile struct {
	ID          int64     `json:"id"`
	AccountID   int64     `json:"account_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	ImageURL    string    `json:"image_url"`
	JoinedAt    time.Time `json:"joined_at"`
}

// ProfileIDs returns the ids of profiles in their given order.
func ProfileIDs(profiles []*Profile) []int64 {
	ids := make([]int64, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.ID)
	}
	return ids
}
