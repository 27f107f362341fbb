package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/orgball2608/mini-insta/internal/domain"
	apperrors "github.com/orgball2608/mini-insta/pkg/errors"
)

type ctxKey int

const (
	accountKey ctxKey = iota
	profileKey
)

// Claims carry the account id of an externally authenticated user in sub.
type Claims struct {
	jwt.RegisteredClaims
}

func (s *Server) parseBearer(r *http.Request) (int64, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return 0, apperrors.Wrap(apperrors.ErrUnauthorized, "missing bearer token")
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.Config.Auth.JWTSecret), nil
	})
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrUnauthorized, "invalid bearer token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, apperrors.Wrap(apperrors.ErrUnauthorized, "invalid bearer token")
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || accountID <= 0 {
		return 0, apperrors.Wrap(apperrors.ErrUnauthorized, "token subject is not an account id")
	}

	return accountID, nil
}

// withAccount requires a valid token but no profile, for profile creation.
func (s *Server) withAccount(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, err := s.parseBearer(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), accountKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) withProfile(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, err := s.parseBearer(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		me, err := s.Profiles.ProfileForAccount(r.Context(), accountID)
		if apperrors.IsNotFound(err) {
			s.writeError(w, r, apperrors.Wrap(apperrors.ErrUnauthorized, "account has no profile"))
			return
		}
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), accountKey, accountID)
		ctx = context.WithValue(ctx, profileKey, me)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withOptionalProfile resolves the viewer when a token is sent; anonymous requests pass through.
func (s *Server) withOptionalProfile(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}
		s.withProfile(next).ServeHTTP(w, r)
	})
}

// limited must run inside withProfile.
func (s *Server) limited(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		me := profileFrom(r.Context())
		if me != nil && !s.Limiter.Allow(me.ID) {
			s.writeError(w, r, apperrors.Wrap(apperrors.ErrRateLimited, "too many actions, slow down"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func accountFrom(ctx context.Context) int64 {
	id, _ := ctx.Value(accountKey).(int64)
	return id
}

// profileFrom returns nil for anonymous requests.
func profileFrom(ctx context.Context) *domain.Profile {
	p, _ := ctx.Value(profileKey).(*domain.Profile)
	return p
}
