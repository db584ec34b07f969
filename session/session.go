package session

import "time"

// Session is the in-memory record of the current user. Only the access token
// is written to durable storage; everything else lives for the process lifetime.
type Session struct {
	Token           string    // Bearer access token, empty when unauthenticated
	User            string    // Display name returned by the login endpoint
	Email           string    // Email used to log in
	StoreContext    string    // Selected store name
	Subject         string    // JWT "sub" claim, when the token is a JWT
	ExpiresAt       time.Time // JWT "exp" claim, zero when unknown
	AuthenticatedAt time.Time // When login succeeded
	Authenticated   bool
}

// Credentials are sent to the login endpoint as {email, password, storeName}.
type Credentials struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	StoreName string `json:"storeName"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
	User        string `json:"user"`
}
