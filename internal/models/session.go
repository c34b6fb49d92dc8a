package models

// Credential is the opaque authorization value of a logged-in principal.
// It is kept in memory for the lifetime of one chat session only.
type Credential struct {
	Authorization string
	Email         string
}

func (c Credential) Valid() bool {
	return c.Authorization != ""
}

type Principal struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
}
