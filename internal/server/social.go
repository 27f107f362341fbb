package server

import (
	"context"
	"net/http"

	"github.com/orgball2608/mini-insta/internal/domain"
	apperrors "github.com/orgball2608/mini-insta/pkg/errors"
)

func (s *Server) handleFollowers() http.HandlerFunc {
	return s.profileList(s.Graph.Followers)
}

func (s *Server) handleFollowing() http.HandlerFunc {
	return s.profileList(s.Graph.Following)
}

func (s *Server) profileList(load func(ctx context.Context, id int64) ([]*domain.Profile, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		list, err := load(r.Context(), id)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func (s *Server) handleFollow() http.HandlerFunc {
	return s.followAction(s.Graph.Follow)
}

func (s *Server) handleUnfollow() http.HandlerFunc {
	return s.followAction(s.Graph.Unfollow)
}

func (s *Server) followAction(action func(ctx context.Context, profileID, followerID int64) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		me := profileFrom(r.Context())
		if err := action(r.Context(), id, me.ID); err != nil {
			s.writeError(w, r, err)
			return
		}

		view := followView{ProfileID: id}
		if view.Following, err = s.Graph.IsFollowing(r.Context(), id, me.ID); err != nil {
			s.writeError(w, r, err)
			return
		}
		if view.FollowerCount, err = s.Graph.FollowerCount(r.Context(), id); err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

func (s *Server) handleFeed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me := profileFrom(r.Context())

		list, err := s.Feed.FeedFor(r.Context(), me.ID)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		photos := map[int64][]*domain.Photo{}
		if len(list) > 0 {
			if photos, err = s.Posts.PhotosByPost(r.Context(), postIDs(list)); err != nil {
				s.writeError(w, r, err)
				return
			}
		}
		writeJSON(w, http.StatusOK, postViews(list, photos))
	}
}

func (s *Server) handleSearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		if !storableText(query) {
			s.writeError(w, r, apperrors.Invalid("query: must be valid UTF-8 without null bytes"))
			return
		}

		result, err := s.Search.Search(r.Context(), query)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
