// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

// Package sec provides cryptographic primitives and session token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, Token Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces.
package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the only role the admin panel issues. The claim is still
// carried explicitly so a future role split does not invalidate old cookies.
const RoleAdmin = "admin"

// SessionClaims is the payload embedded inside an admin session token.
type SessionClaims struct {
	jwt.RegisteredClaims

	Role string `json:"rol"`
}

// SessionService signs and verifies admin session tokens using HS256.
//
// # Why symmetric signing?
//
// The API is the only party that ever issues or checks a session, so a
// shared-secret scheme avoids key files without losing anything.
type SessionService struct {
	secret   []byte
	issuer   string
	lifetime time.Duration
}

// NewSessionService creates a SessionService from the configured secret.
func NewSessionService(secret, issuer string, lifetime time.Duration) (*SessionService, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("sec: session secret must be at least 32 bytes")
	}
	return &SessionService{
		secret:   []byte(secret),
		issuer:   issuer,
		lifetime: lifetime,
	}, nil
}

// Lifetime returns how long issued sessions stay valid.
func (service *SessionService) Lifetime() time.Duration {
	return service.lifetime
}

// Issue creates a signed admin session token.
func (service *SessionService) Issue() (string, error) {
	currentTime := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.lifetime)),
		},
		Role: RoleAdmin,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign session token: %w", err)
	}

	return signedToken, nil
}

// VerifyAdmin checks the signature, expiry, issuer, and role of a session
// token. It returns an error for anything short of a valid admin session.
func (service *SessionService) VerifyAdmin(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	}, jwt.WithIssuer(service.issuer))

	if err != nil {
		return fmt.Errorf("sec: invalid session token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return fmt.Errorf("sec: invalid session claims")
	}
	if claims.Role != RoleAdmin {
		return fmt.Errorf("sec: session does not carry the admin role")
	}

	return nil
}
