package request_models

type CreateJourneyRequest struct {
	Title       string                   `json:"title" binding:"required"`
	Description string                   `json:"description"`
	IsPublic    bool                     `json:"isPublic"`
	Dimensions  []CreateDimensionRequest `json:"dimensions" binding:"required"`
}

type CreateDimensionRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Weight       int    `json:"weight"`
	DisplayOrder *int   `json:"displayOrder"`
}

type JoinJourneyRequest struct {
	InviteToken string `json:"inviteToken"`
}

type SendInviteRequest struct {
	Email string `json:"email" binding:"required,email"`
}
