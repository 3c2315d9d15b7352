package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/footy-tipping/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrNoBearerToken is returned by ParseBearerToken when the header carries no token.
var ErrNoBearerToken = errors.New("no bearer token in authorization header")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for userID.
//
// The token carries the user id as a decimal string in the "id" claim, plus
// the registered claims:
//   - IssuedAt  (iat): now
//   - NotBefore (nbf): now
//   - ExpiresAt (exp): now plus tokenDuration
//
// Returns an error if tokenDuration is not positive or signKey is empty.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(42, time.Now(), 7*24*time.Hour, "secret")
func GenerateJWTToken(userID int64, now time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	expiresAt := jwt.NewNumericDate(now.Add(tokenDuration))
	claims := &models.Claims{
		UserID: strconv.FormatInt(userID, 10),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: expiresAt,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, UserID: userID, ExpiresAt: expiresAt.Time}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// the user id from it.
//
// Validation includes:
//   - signing method must be HS256
//   - signature verification using tokenSignKey
//   - exp must be present and strictly after now(), with no leeway
//   - nbf, when present, must not be after now()
//   - the "id" claim must be present and a base-10 int64
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", time.Now)
//	if err != nil {
//	    // reject the request
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey string, now func() time.Time) (models.Token, error) {
	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting id from token: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		UserID:       userID,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ParseBearerToken extracts the token from an Authorization header value.
//
// The last space-separated segment is taken as the token, so both
// "Bearer <token>" and a bare "<token>" yield the token. An empty header
// returns ErrNoBearerToken.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) == 0 {
		return "", ErrNoBearerToken
	}
	return parts[len(parts)-1], nil
}

// ParseUnverifiedClaims decodes the claims of tokenString without checking
// its signature. Only use it on tokens the caller already trusts, e.g. to
// show the expiry of the client's own session.
func ParseUnverifiedClaims(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
