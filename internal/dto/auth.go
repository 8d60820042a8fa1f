package dto

// LoginRequest carries the shared family password. There are no usernames:
// the wallet has a single owner credential.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"` // seconds
}

// ResetRequest re-confirms the family password before wiping the ledger.
type ResetRequest struct {
	Password string `json:"password" binding:"required"`
}
