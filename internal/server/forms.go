package server

import (
	"strings"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"
	"github.com/orgball2608/mini-insta/internal/domain"
)

func init() {
	govalidator.TagMap["text"] = govalidator.Validator(storableText)
}

// storableText rejects strings postgres cannot keep in a text column.
func storableText(s string) bool {
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}

type normalizer interface {
	normalize()
}

type createProfileForm struct {
	Username    string `json:"username" valid:"required,matches(^[A-Za-z0-9_.]+$),runelength(1|150)"`
	DisplayName string `json:"display_name" valid:"text,runelength(0|150)"`
	Bio         string `json:"bio" valid:"text,runelength(0|2000)"`
	ImageURL    string `json:"image_url" valid:"text,url,optional"`
}

func (f *createProfileForm) normalize() {
	f.Username = strings.TrimSpace(f.Username)
	f.DisplayName = strings.TrimSpace(f.DisplayName)
	f.Bio = strings.TrimSpace(f.Bio)
	f.ImageURL = strings.TrimSpace(f.ImageURL)
}

type updateProfileForm struct {
	DisplayName string `json:"display_name" valid:"text,runelength(0|150)"`
	Bio         string `json:"bio" valid:"text,runelength(0|2000)"`
	ImageURL    string `json:"image_url" valid:"text,url,optional"`
}

func (f *updateProfileForm) normalize() {
	f.DisplayName = strings.TrimSpace(f.DisplayName)
	f.Bio = strings.TrimSpace(f.Bio)
	f.ImageURL = strings.TrimSpace(f.ImageURL)
}

type photoForm struct {
	ImageURL  string `json:"image_url" valid:"text,url,optional"`
	ImageFile string `json:"image_file" valid:"text,optional"`
}

type postForm struct {
	Caption string      `json:"caption" valid:"required,text,runelength(1|2200)"`
	Photos  []photoForm `json:"photos"`
}

func (f *postForm) normalize() {
	f.Caption = strings.TrimSpace(f.Caption)
	for i := range f.Photos {
		f.Photos[i].ImageURL = strings.TrimSpace(f.Photos[i].ImageURL)
		f.Photos[i].ImageFile = strings.TrimSpace(f.Photos[i].ImageFile)
	}
}

func (f *postForm) photos() []domain.Photo {
	out := make([]domain.Photo, 0, len(f.Photos))
	for _, p := range f.Photos {
		out = append(out, domain.Photo{ImageURL: p.ImageURL, ImageFile: p.ImageFile})
	}
	return out
}

type captionForm struct {
	Caption string `json:"caption" valid:"required,text,runelength(1|2200)"`
}

func (f *captionForm) normalize() {
	f.Caption = strings.TrimSpace(f.Caption)
}

type commentForm struct {
	Text string `json:"text" valid:"required,text,runelength(1|2000)"`
}

func (f *commentForm) normalize() {
	f.Text = strings.TrimSpace(f.Text)
}
