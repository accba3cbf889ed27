// Package auth mints session tokens for the login flow.
//
// The entire user record is signed into the claims with HS256 and the token
// carries no expiry. No password or other credential is verified before
// signing. This is a known-weak design kept on purpose; see the project
// README before reusing it anywhere else.
package auth

import (
	"encoding/json"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/todolist/internal/server/models"
)

// GenerateToken signs the full user record with the server secret and returns
// the compact JWT string.
func GenerateToken(user *models.User, secretKey []byte) (string, error) {
	claims, err := userClaims(user)
	if err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return tokenString, nil
}

// ParseToken verifies the signature and returns the embedded user claims.
// There is no expiry to check.
func ParseToken(tokenString string, secretKey []byte) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}

// userClaims flattens the user record into MapClaims through its JSON form,
// so the claim names match the wire representation of the user.
func userClaims(user *models.User) (jwt.MapClaims, error) {
	b, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("error marshalling user: %w", err)
	}

	claims := jwt.MapClaims{}
	if err := json.Unmarshal(b, &claims); err != nil {
		return nil, fmt.Errorf("error building claims: %w", err)
	}

	return claims, nil
}
