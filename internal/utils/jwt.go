package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akwaabahomes/passcheck/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidTokenParams         = errors.New("invalid params for generating JWT token")
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)

// GenerateJWTToken creates an HMAC-SHA256 signed access token for userID.
//
// The token carries iss, sub (the user id in base 10), iat, exp and a random
// jti. issuer, tokenDuration and signKey are all required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("passcheck", 42, time.Hour, "secret")
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     signed,
		UserID:           userID,
	}, nil
}

// ValidateAndParseJWTToken verifies the signature, the HS256 algorithm, the
// issuer and the expiry of tokenString and extracts the user id from sub.
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(raw, "secret", "passcheck")
//	if err != nil {
//	    // reject the request
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	parsed := models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, &parsed.RegisteredClaims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	parsed.Token = token
	parsed.SignedString = tokenString

	userID, err := parsed.GetUserID()
	if err != nil {
		return models.Token{}, err
	}
	parsed.UserID = userID

	return parsed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.Contains(token, " ") {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}
