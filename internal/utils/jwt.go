package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidUploadTokenParams is returned when a token cannot be issued
// because a required parameter is empty or zero.
var ErrInvalidUploadTokenParams = errors.New("invalid params for generating upload token")

// GenerateUploadToken signs an HMAC-SHA256 JWT that authorizes exactly one
// upload. The slot identifier travels in the "jti" claim and becomes the
// storage identifier of the uploaded bytes.
//
// Claims: iss = issuer, jti = slotID, iat = now, exp = now + ttl.
//
// Parameters:
//
//	issuer  - value of the "iss" claim, checked again by ParseUploadToken
//	slotID  - UUID of the upload slot
//	ttl     - lifetime of the token, must be positive
//	signKey - HMAC secret
//
// Returns:
//
//	string - the signed token
//	error  - ErrInvalidUploadTokenParams or a signing error
//
// Example usage:
//
//	token, err := utils.GenerateUploadToken("go-contacts", slotID, 15*time.Minute, key)
func GenerateUploadToken(issuer, slotID string, ttl time.Duration, signKey string) (string, error) {
	if issuer == "" || slotID == "" || ttl <= 0 || signKey == "" {
		return "", ErrInvalidUploadTokenParams
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		ID:        slotID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing upload token: %w", err)
	}

	return signed, nil
}

// ParseUploadToken verifies signature, issuer and expiry of an upload token
// and returns the slot identifier it carries. Tokens signed with any
// algorithm other than HS256 are rejected.
//
// Example usage:
//
//	slotID, err := utils.ParseUploadToken(token, key, "go-contacts")
//	if err != nil {
//	    return service.ErrInvalidUploadToken
//	}
func ParseUploadToken(tokenString, signKey, issuer string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", fmt.Errorf("error occurred validating upload token: %w", err)
	}

	if claims.ID == "" {
		return "", errors.New("upload token has no slot id")
	}

	return claims.ID, nil
}
