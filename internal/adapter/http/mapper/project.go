package mapper

import (
	"projecthub/internal/adapter/http/dto"
	"projecthub/internal/core/domain"
)

// ProjectUserIDs lists every user referenced by projects, duplicates included.
func ProjectUserIDs(projects ...domain.Project) []domain.UserID {
	ids := make([]domain.UserID, 0)
	for _, project := range projects {
		ids = append(ids, project.OwnerID)
		ids = append(ids, project.Team...)
	}
	return ids
}

func ToProjectItems(projects []domain.Project, users Users) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project, users))
	}
	return items
}

func ToProjectItem(project domain.Project, users Users) dto.ProjectItem {
	return dto.ProjectItem{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Owner:       users.summary(project.OwnerID),
		Team:        users.summaries(project.Team),
		Status:      string(project.Status),
		Color:       project.Color,
		StartDate:   formatTime(project.StartDate),
		EndDate:     formatOptional(project.EndDate),
		Tags:        nonNilStrings(project.Tags),
		CreatedAt:   formatTime(project.CreatedAt),
		UpdatedAt:   formatTime(project.UpdatedAt),
	}
}

func ToProjectDetails(details domain.ProjectDetails, users Users) dto.ProjectDetailsResponse {
	return dto.ProjectDetailsResponse{
		Project: ToProjectItem(details.Project, users),
		Stats:   ToTaskStats(details.Stats),
	}
}
