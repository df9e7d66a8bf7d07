package models

// Account disimpan di collection "accounts" dengan id dokumen = username.
type Account struct {
	Username     string `json:"username"`
	DisplayName  string `json:"display_name"`
	Role         string `json:"role"`
	Pronouns     string `json:"pronouns,omitempty"`
	PasswordHash string `json:"-"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string  `json:"token"`
	ExpiresAt string  `json:"expires_at"`
	Account   Account `json:"account"`
}
