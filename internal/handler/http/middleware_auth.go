// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/avdeenko/biograph/internal/auth"
	"github.com/avdeenko/biograph/internal/logger"
)

// withAuth enforces bearer-token authentication. On success the token's user
// name is stored in the request context for downstream handlers.
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := auth.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		user, err := auth.ValidateToken(h.auth, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrTokenExpired):
				log.Err(err).Msg("token expired")
				http.Error(w, auth.ErrTokenExpired.Error(), http.StatusUnauthorized)
			default:
				log.Err(err).Msg("error occurred during parsing token")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			}
			return
		}

		ctx := context.WithValue(r.Context(), userCtxKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userFromContext returns the authenticated user set by withAuth.
func userFromContext(ctx context.Context) string {
	user, _ := ctx.Value(userCtxKey).(string)
	return user
}
