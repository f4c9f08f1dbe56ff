package response_models

type JourneyResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	IsPublic       bool   `json:"isPublic"`
	Status         string `json:"status"`
	MemberCount    int    `json:"memberCount"`
	DimensionCount int    `json:"dimensionCount"`
	UserIsMember   bool   `json:"userIsMember"`
}

type JourneyDetailResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	IsPublic    bool                `json:"isPublic"`
	Status      string              `json:"status"`
	Dimensions  []DimensionResponse `json:"dimensions"`
	Members     []MemberResponse    `json:"members"`
	Stats       JourneyStats        `json:"stats"`
}

type DimensionResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Weight       int    `json:"weight"`
	DisplayOrder int    `json:"displayOrder"`
}

type MemberResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	Role        string `json:"role"`
}

type JourneyStats struct {
	TotalCheckins int     `json:"totalCheckins"`
	AvgScore      float64 `json:"avgScore"`
	CurrentStreak int     `json:"currentStreak"`
}

type InviteResponse struct {
	ID        string `json:"id"`
	JourneyID string `json:"journeyId"`
	Email     string `json:"email"`
	Token     string `json:"token"`
	Status    string `json:"status"`
	ExpiresAt string `json:"expiresAt"`
}
