package users

// SetActiveRequest toggles the soft-disable flag
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// SetPermissionsRequest replaces the back-office permission tags
type SetPermissionsRequest struct {
	Permissions []string `json:"permissions" binding:"required"`
}

// CreateUserRequest is the admin path for provisioning accounts; a nil
// Coins value creates an unlimited balance
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"is_admin"`
	Coins    *int64 `json:"coins"`
}

// SetAPIKeyRequest stores a personal provider key for the caller
type SetAPIKeyRequest struct {
	Provider string `json:"provider" binding:"required,oneof=gemini gpt grok"`
	Key      string `json:"key" binding:"required"`
}
