package models

// LoginResponse is returned by the login endpoint on successful
// authentication. The token is a compact JWS string the client is expected
// to send back in the "Authorization: Bearer" header.
type LoginResponse struct {
	// AccessToken is the signed JWT issued for this session.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer"; included for OAuth2-style clients.
	TokenType string `json:"token_type"`
}

// UploadedFileResponse is returned by the upload endpoint with HTTP 201.
// It is the public view of a freshly created [File] record.
type UploadedFileResponse struct {
	File File `json:"file"`
}
