package mapper

import (
	"projecthub/internal/adapter/http/dto"
	"projecthub/internal/core/domain"
)

// TaskUserIDs lists assignees, creators and comment authors of tasks.
func TaskUserIDs(tasks ...domain.Task) []domain.UserID {
	ids := make([]domain.UserID, 0)
	for _, task := range tasks {
		ids = append(ids, task.CreatedBy)
		ids = append(ids, task.AssignedTo...)
		for _, comment := range task.Comments {
			ids = append(ids, comment.Author)
		}
	}
	return ids
}

func ToTaskItems(tasks []domain.Task, users Users) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task, users))
	}
	return items
}

func ToTaskItem(task domain.Task, users Users) dto.TaskItem {
	item := dto.TaskItem{
		ID:             task.ID,
		Title:          task.Title,
		Description:    task.Description,
		Project:        task.ProjectID,
		AssignedTo:     users.summaries(task.AssignedTo),
		CreatedBy:      users.summary(task.CreatedBy),
		Status:         string(task.Status),
		Priority:       string(task.Priority),
		DueDate:        formatOptional(task.DueDate),
		CompletedAt:    formatOptional(task.CompletedAt),
		Attachments:    make([]dto.AttachmentItem, 0, len(task.Attachments)),
		Comments:       make([]dto.CommentItem, 0, len(task.Comments)),
		Labels:         nonNilStrings(task.Labels),
		EstimatedHours: task.EstimatedHours,
		ActualHours:    task.ActualHours,
		CreatedAt:      formatTime(task.CreatedAt),
		UpdatedAt:      formatTime(task.UpdatedAt),
	}

	for _, a := range task.Attachments {
		item.Attachments = append(item.Attachments, dto.AttachmentItem{
			Filename:   a.Filename,
			Path:       a.Path,
			Size:       a.Size,
			UploadedAt: formatTime(a.UploadedAt),
		})
	}

	for _, c := range task.Comments {
		item.Comments = append(item.Comments, dto.CommentItem{
			User:      users.summary(c.Author),
			Text:      c.Text,
			CreatedAt: formatTime(c.CreatedAt),
		})
	}

	return item
}

func ToTaskStats(stats domain.TaskStats) dto.TaskStatsResponse {
	return dto.TaskStatsResponse{
		Todo:       stats.Todo,
		InProgress: stats.InProgress,
		Review:     stats.Review,
		Done:       stats.Done,
		Total:      stats.Total,
		TotalHours: stats.TotalHours,
	}
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
