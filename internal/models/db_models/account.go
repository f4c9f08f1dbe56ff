package db_models

type Account struct {
	BaseModel
	Username    string `gorm:"uniqueIndex"`
	Email       string `gorm:"uniqueIndex"`
	DisplayName string
	AvatarURL   string
	// Empty for OAuth-only accounts.
	PasswordHash    string
	OAuthProvider   string
	OAuthProviderID string `gorm:"index"`

	Journeys []Journey `gorm:"foreignKey:CreatedBy"`
	CheckIns []Checkin `gorm:"foreignKey:AccountID"`
}
