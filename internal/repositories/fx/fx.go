package fx

import (
	"github.com/orgball2608/mini-insta/internal/repositories/comment"
	"github.com/orgball2608/mini-insta/internal/repositories/follow"
	"github.com/orgball2608/mini-insta/internal/repositories/like"
	"github.com/orgball2608/mini-insta/internal/repositories/photo"
	"github.com/orgball2608/mini-insta/internal/repositories/post"
	"github.com/orgball2608/mini-insta/internal/repositories/profile"
	"go.uber.org/fx"
)

var Module = fx.Options(
	profile.Module,
	post.Module,
	photo.Module,
	follow.Module,
	comment.Module,
	like.Module,
)
