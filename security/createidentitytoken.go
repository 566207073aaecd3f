package security

import (
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type WorkSightIdentity struct {
	Id             int
	OrganizationId int
	Email          string
	Role           string
}

type Identity struct {
	ID             int    `json:"nameid"`
	OrganizationID int    `json:"orgid"`
	Email          string `json:"email"`
	Role           string `json:"role"`
}

type IdentityClaims struct {
	Identity
	jwt.RegisteredClaims
}

func CreateIdentityToken(identity *WorkSightIdentity, base64Secret string, expiresInSeconds int64) (string, error) {
	secretBytes, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return "", err
	}
	claims := IdentityClaims{
		Identity: Identity{
			ID:             identity.Id,
			OrganizationID: identity.OrganizationId,
			Email:          identity.Email,
			Role:           identity.Role,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "worksight",
			Audience:  []string{"*.worksight.com"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiresInSeconds) * time.Second)),
		},
	}

	// HS256 signing (symmetric key)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secretBytes))
}
