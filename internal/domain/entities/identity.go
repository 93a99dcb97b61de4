package entities

// Identity is resolved once per request at the HTTP boundary: either an
// authenticated user or an anonymous session token from the cookie.
type Identity struct {
	UserID       *uint
	Email        string
	IsAdmin      bool
	SessionToken string
}

func (i Identity) Authenticated() bool { return i.UserID != nil }

// HasIdentity reports whether the request can be attributed to anyone at all.
func (i Identity) HasIdentity() bool { return i.UserID != nil || i.SessionToken != "" }
