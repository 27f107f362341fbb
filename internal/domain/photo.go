package domain

import (
	"time"

	apperrors "github.com/orgball2608/mini-insta/pkg/errors"
)

// DefaultImageFile is attached to posts created without any image.
const DefaultImageFile = "default.png"

// Photo belongs to a Post and references exactly one of an external URL or a stored file.
type Photo struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	ImageURL  string    `json:"image_url,omitempty"`
	ImageFile string    `json:"image_file,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ImageRef returns whichever image reference the photo carries.
func (p Photo) ImageRef() string {
	if p.ImageURL != "" {
		return p.ImageURL
	}
	return p.ImageFile
}

func (p Photo) Validate() error {
	switch {
	case p.ImageURL == "" && p.ImageFile == "":
		return apperrors.Invalid("photo needs an image url or an image file")
	case p.ImageURL != "" && p.ImageFile != "":
		return apperrors.Invalid("photo must not have both an image url and an image file")
	}
	return nil
}
