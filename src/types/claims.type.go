package types

import "github.com/golang-jwt/jwt/v4"

// Claims carried by bearer tokens issued by the identity provider.
// Subject holds the numeric user id.
type Claims struct {
	Username string `json:"username"`
	IsStaff  bool   `json:"is_staff"`
	jwt.RegisteredClaims
}
