package sysconfig

type SetProviderKeyRequest struct {
	Provider string `json:"provider" binding:"required,oneof=gemini gpt grok"`
	Key      string `json:"key" binding:"required"`
}

type SetGuestLimitRequest struct {
	GuestMessageLimit *int `json:"guest_message_limit" binding:"required,gte=0"`
}
