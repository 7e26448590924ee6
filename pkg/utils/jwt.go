package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CrossAppClaims are the claims of a token issued by the sibling login app
type CrossAppClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenVerifier validates cross-app tokens signed with a shared HS256 secret
type TokenVerifier struct {
	secretKey []byte
	audience  string
	issuer    string
}

// NewTokenVerifier creates a new token verifier
func NewTokenVerifier(secret, audience, issuer string) *TokenVerifier {
	return &TokenVerifier{
		secretKey: []byte(secret),
		audience:  audience,
		issuer:    issuer,
	}
}

// Verify validates the signature, expiry, audience and issuer of a token and returns its claims
func (v *TokenVerifier) Verify(tokenString string) (*CrossAppClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CrossAppClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(v.audience),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CrossAppClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, errors.New("token carries no user")
	}
	return claims, nil
}

// Issue signs a token the way the login app does. Used by tests and local tooling.
func (v *TokenVerifier) Issue(userID, email, name, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &CrossAppClaims{
		UserID: userID,
		Email:  email,
		Name:   name,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    v.issuer,
			Audience:  jwt.ClaimStrings{v.audience},
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secretKey)
}
