package domain

// Identity is the account as reported by the web-app handshake.
// Only Username changes after startup (suffixed on registration collisions).
type Identity struct {
	SessionName string `json:"session_name"`
	UserID      int64  `json:"id"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
}

// FullName returns first and last name joined by a space when both exist
func (i Identity) FullName() string {
	switch {
	case i.FirstName == "":
		return i.LastName
	case i.LastName == "":
		return i.FirstName
	default:
		return i.FirstName + " " + i.LastName
	}
}

// Credentials is the bearer/refresh token pair. It is always replaced as a whole.
type Credentials struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// IsZero reports whether no access token is held
func (c Credentials) IsZero() bool {
	return c.Access == ""
}

// Fingerprint is the synthetic browser identity cached per session
type Fingerprint struct {
	SessionName string `json:"session_name"`
	UserAgent   string `json:"user_agent"`
	SecChUa     string `json:"sec_ch_ua"`
}
