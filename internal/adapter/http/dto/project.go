package dto

type ProjectItem struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Owner       UserSummary   `json:"owner"`
	Team        []UserSummary `json:"team"`
	Status      string        `json:"status"`
	Color       string        `json:"color"`
	StartDate   string        `json:"startDate"`
	EndDate     *string       `json:"endDate,omitempty"`
	Tags        []string      `json:"tags"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt"`
}

type ProjectDetailsResponse struct {
	Project ProjectItem       `json:"project"`
	Stats   TaskStatsResponse `json:"stats"`
}

type CreateProjectRequest struct {
	Name        string   `json:"name" binding:"required,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=65535"`
	Color       *string  `json:"color" binding:"omitempty,hexcolor"`
	StartDate   *string  `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	Tags        []string `json:"tags" binding:"omitempty,dive,max=64"`
}

type UpdateProjectRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=65535"`
	Status      *string  `json:"status" binding:"omitempty,oneof=active archived completed"`
	Color       *string  `json:"color" binding:"omitempty,hexcolor"`
	StartDate   *string  `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	Tags        []string `json:"tags" binding:"omitempty,dive,max=64"`
}

type AddTeamMemberRequest struct {
	UserID string `json:"userId" binding:"required"`
}
