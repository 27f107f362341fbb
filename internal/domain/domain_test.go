package domain

import (
	"testing"
	"time"

	apperrors "github.com/orgball2608/mini-insta/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestPhotoValidate(t *testing.T) {
	assert.NoError(t, Photo{ImageURL: "https://img.example/cat.jpg"}.Validate())
	assert.NoError(t, Photo{ImageFile: DefaultImageFile}.Validate())

	err := Photo{}.Validate()
	assert.True(t, apperrors.IsInvalidInput(err))

	err = Photo{ImageURL: "https://img.example/cat.jpg", ImageFile: "cat.jpg"}.Validate()
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestPhotoImageRef(t *testing.T) {
	assert.Equal(t, "https://img.example/cat.jpg", Photo{ImageURL: "https://img.example/cat.jpg"}.ImageRef())
	assert.Equal(t, "cat.jpg", Photo{ImageFile: "cat.jpg"}.ImageRef())
}

func TestPostNewerThan(t *testing.T) {
	t1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)

	older := &Post{ID: 1, CreatedAt: t1}
	newer := &Post{ID: 2, CreatedAt: t2}
	assert.True(t, newer.NewerThan(older))
	assert.False(t, older.NewerThan(newer))

	tieFirst := &Post{ID: 3, CreatedAt: t1}
	tieSecond := &Post{ID: 4, CreatedAt: t1}
	assert.True(t, tieFirst.NewerThan(tieSecond))
	assert.False(t, tieSecond.NewerThan(tieFirst))
}

func TestProfileIDs(t *testing.T) {
	assert.Equal(t, []int64{3, 1}, ProfileIDs([]*Profile{{ID: 3}, {ID: 1}}))
	assert.Empty(t, ProfileIDs(nil))
}
