package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set embedded in every issued JWT.
//
// It extends the standard registered claims (sub, exp, iat, iss) with the
// numeric user identifier, so that the authorization layer can resolve the
// caller's role without an extra lookup by username.
type TokenClaims struct {
	jwt.RegisteredClaims

	// UserID is the internal identifier of the token's owner.
	UserID int64 `json:"uid"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing).
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// Username and UserID are cached, parsed copies of the "sub" and "uid"
// claims populated during token construction or parsing.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Username is the subject extracted from the "sub" claim.
	Username string `json:"-"`

	// UserID is the owner identifier extracted from the "uid" claim.
	UserID int64 `json:"-"`
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
