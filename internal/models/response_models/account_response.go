package response_models

type AccountResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

type AuthResponse struct {
	AccessToken string          `json:"accessToken"`
	User        AccountResponse `json:"user"`
}
