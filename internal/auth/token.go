// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

// Package auth issues and validates the HMAC-SHA256 session tokens the hub
// hands out. A token's subject is the collaborating user name; jti carries a
// unique session id so two sessions of the same user stay distinguishable.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avdeenko/biograph/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrTokenExpired is returned when an otherwise valid token is past its
	// expiry claim.
	ErrTokenExpired = errors.New("session token expired")

	// ErrInvalidToken covers every other validation failure: bad signature,
	// wrong issuer, malformed claims, empty subject.
	ErrInvalidToken = errors.New("invalid session token")
)

// Settings hold the signing parameters shared by issue and validate.
type Settings struct {
	SignKey  string
	Issuer   string
	Duration time.Duration
}

// GenerateToken creates a signed session for the given user.
func GenerateToken(s Settings, user string) (models.Session, error) {
	if s.SignKey == "" || s.Issuer == "" || s.Duration == 0 || user == "" {
		return models.Session{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		ID:        newSessionID(),
		Issuer:    s.Issuer,
		Subject:   user,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.Duration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.SignKey))
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Session{User: user, Token: signed, IssuedAt: now}, nil
}

// ValidateToken verifies signature, issuer and expiry, and returns the
// token's user.
func ValidateToken(s Settings, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(s.SignKey), nil
	}, jwt.WithIssuer(s.Issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	user, err := token.Claims.GetSubject()
	if err != nil || user == "" {
		return "", ErrInvalidToken
	}
	return user, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <tok>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// newSessionID prefers time-ordered v7 ids and falls back to v4.
func newSessionID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
