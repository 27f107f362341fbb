package server

import (
	"context"
	"net/http"

	"github.com/orgball2608/mini-insta/internal/domain"
)

func (s *Server) handleListProfiles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.Profiles.List(r.Context())
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func (s *Server) handleCreateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := &createProfileForm{}
		if err := decodeForm(w, r, form); err != nil {
			s.writeError(w, r, err)
			return
		}

		created, err := s.Profiles.Create(r.Context(), domain.Profile{
			AccountID:   accountFrom(r.Context()),
			Username:    form.Username,
			DisplayName: form.DisplayName,
			Bio:         form.Bio,
			ImageURL:    form.ImageURL,
		})
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func (s *Server) handleMyProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me := profileFrom(r.Context())

		view, err := s.profileView(r.Context(), me, me, false)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

func (s *Server) handleUpdateMyProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := &updateProfileForm{}
		if err := decodeForm(w, r, form); err != nil {
			s.writeError(w, r, err)
			return
		}

		me := profileFrom(r.Context())
		updated, err := s.Profiles.Update(r.Context(), me.ID, form.DisplayName, form.Bio, form.ImageURL)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func (s *Server) handleGetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		target, err := s.Profiles.Get(r.Context(), id)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		view, err := s.profileView(r.Context(), target, profileFrom(r.Context()), true)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

// profileView renders target as seen by viewer, who is nil for anonymous requests.
func (s *Server) profileView(ctx context.Context, target, viewer *domain.Profile, withPosts bool) (*profileView, error) {
	view := &profileView{Profile: target}

	var err error
	if view.FollowerCount, err = s.Graph.FollowerCount(ctx, target.ID); err != nil {
		return nil, err
	}
	if view.FollowingCount, err = s.Graph.FollowingCount(ctx, target.ID); err != nil {
		return nil, err
	}

	if viewer != nil {
		view.IsOwn = viewer.ID == target.ID
		if !view.IsOwn {
			if view.IsFollowed, err = s.Graph.IsFollowing(ctx, target.ID, viewer.ID); err != nil {
				return nil, err
			}
		}
	}

	if !withPosts {
		return view, nil
	}

	list, err := s.Posts.ByProfile(ctx, target.ID)
	if err != nil {
		return nil, err
	}

	photos, err := s.Posts.PhotosByPost(ctx, postIDs(list))
	if err != nil {
		return nil, err
	}

	view.Posts = postViews(list, photos)
	return view, nil
}
