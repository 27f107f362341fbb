package server

import (
	"net/http"

	"github.com/orgball2608/mini-insta/internal/domain"
	"github.com/orgball2608/mini-insta/pkg/formatter"
)

func (s *Server) handleCreatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := &postForm{}
		if err := decodeForm(w, r, form); err != nil {
			s.writeError(w, r, err)
			return
		}

		me := profileFrom(r.Context())
		created, photos, err := s.Posts.Create(r.Context(), me.ID, form.Caption, form.photos())
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, &postView{Post: created, Photos: photos})
	}
}

func (s *Server) handleGetPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		ctx := r.Context()
		p, err := s.Posts.Get(ctx, id)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		view := &postDetailView{Post: p}
		if view.Photos, err = s.Posts.Photos(ctx, id); err != nil {
			s.writeError(w, r, err)
			return
		}
		if view.Comments, err = s.Engagement.Comments(ctx, id); err != nil {
			s.writeError(w, r, err)
			return
		}
		if view.Engagement, err = s.Engagement.SummaryOf(ctx, p); err != nil {
			s.writeError(w, r, err)
			return
		}

		if recent := view.Engagement.MostRecentLike; recent != nil {
			liker, err := s.Profiles.Get(ctx, recent.ProfileID)
			if err != nil {
				s.writeError(w, r, err)
				return
			}
			view.LikedBy = formatter.LikedBy(liker.Username, view.Engagement.LikeCount)
		}

		if me := profileFrom(ctx); me != nil {
			if view.HasLiked, err = s.Engagement.HasLiked(ctx, id, me.ID); err != nil {
				s.writeError(w, r, err)
				return
			}
		}
		writeJSON(w, http.StatusOK, view)
	}
}

func (s *Server) handleUpdatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		form := &captionForm{}
		if err := decodeForm(w, r, form); err != nil {
			s.writeError(w, r, err)
			return
		}

		updated, err := s.Posts.UpdateCaption(r.Context(), id, profileFrom(r.Context()).ID, form.Caption)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func (s *Server) handleDeletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		if err := s.Posts.Delete(r.Context(), id, profileFrom(r.Context()).ID); err != nil {
			s.writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) handleComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		form := &commentForm{}
		if err := decodeForm(w, r, form); err != nil {
			s.writeError(w, r, err)
			return
		}

		c, err := s.Engagement.Comment(r.Context(), id, profileFrom(r.Context()).ID, form.Text)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, c)
	}
}

func (s *Server) handleLike() http.HandlerFunc {
	return s.likeAction(true)
}

func (s *Server) handleUnlike() http.HandlerFunc {
	return s.likeAction(false)
}

func (s *Server) likeAction(like bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		ctx := r.Context()
		me := profileFrom(ctx)
		if like {
			err = s.Engagement.Like(ctx, id, me.ID)
		} else {
			err = s.Engagement.Unlike(ctx, id, me.ID)
		}
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		var summary *domain.Engagement
		if summary, err = s.Engagement.Summary(ctx, id); err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}
