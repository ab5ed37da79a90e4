package mongodb

import (
	"time"

	"projecthub/internal/core/domain"
)

type userDocument struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"passwordHash"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

type projectDocument struct {
	ID          string     `bson:"_id"`
	Name        string     `bson:"name"`
	Description string     `bson:"description"`
	Owner       string     `bson:"owner"`
	Team        []string   `bson:"team"`
	Status      string     `bson:"status"`
	Color       string     `bson:"color"`
	StartDate   time.Time  `bson:"startDate"`
	EndDate     *time.Time `bson:"endDate,omitempty"`
	Tags        []string   `bson:"tags"`
	CreatedAt   time.Time  `bson:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt"`
}

type attachmentDocument struct {
	Filename   string    `bson:"filename"`
	Path       string    `bson:"path"`
	Size       int64     `bson:"size"`
	UploadedAt time.Time `bson:"uploadedAt"`
}

type commentDocument struct {
	User      string    `bson:"user"`
	Text      string    `bson:"text"`
	CreatedAt time.Time `bson:"createdAt"`
}

type taskDocument struct {
	ID             string               `bson:"_id"`
	Title          string               `bson:"title"`
	Description    string               `bson:"description"`
	Project        string               `bson:"project"`
	AssignedTo     []string             `bson:"assignedTo"`
	CreatedBy      string               `bson:"createdBy"`
	Status         string               `bson:"status"`
	Priority       string               `bson:"priority"`
	DueDate        *time.Time           `bson:"dueDate,omitempty"`
	CompletedAt    *time.Time           `bson:"completedAt,omitempty"`
	Attachments    []attachmentDocument `bson:"attachments"`
	Comments       []commentDocument    `bson:"comments"`
	Labels         []string             `bson:"labels"`
	EstimatedHours *float64             `bson:"estimatedHours,omitempty"`
	ActualHours    *float64             `bson:"actualHours,omitempty"`
	CreatedAt      time.Time            `bson:"createdAt"`
	UpdatedAt      time.Time            `bson:"updatedAt"`
}

type statusBucketDocument struct {
	Status     string  `bson:"_id"`
	Count      int64   `bson:"count"`
	TotalHours float64 `bson:"totalHours"`
}

func toUserDocument(u domain.User) userDocument {
	return userDocument{
		ID:           string(u.ID),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (d userDocument) toDomain() domain.User {
	return domain.User{
		ID:           domain.UserID(d.ID),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func toProjectDocument(p domain.Project) projectDocument {
	return projectDocument{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Owner:       string(p.OwnerID),
		Team:        fromUserIDs(p.Team),
		Status:      string(p.Status),
		Color:       p.Color,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Tags:        nonNil(p.Tags),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (d projectDocument) toDomain() domain.Project {
	return domain.Project{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		OwnerID:     domain.UserID(d.Owner),
		Team:        toUserIDs(d.Team),
		Status:      domain.ProjectStatus(d.Status),
		Color:       d.Color,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Tags:        nonNil(d.Tags),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toTaskDocument(t domain.Task) taskDocument {
	doc := taskDocument{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Project:        t.ProjectID,
		AssignedTo:     fromUserIDs(t.AssignedTo),
		CreatedBy:      string(t.CreatedBy),
		Status:         string(t.Status),
		Priority:       string(t.Priority),
		DueDate:        t.DueDate,
		CompletedAt:    t.CompletedAt,
		Attachments:    toAttachmentDocuments(t.Attachments),
		Comments:       make([]commentDocument, 0, len(t.Comments)),
		Labels:         nonNil(t.Labels),
		EstimatedHours: t.EstimatedHours,
		ActualHours:    t.ActualHours,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
	for _, c := range t.Comments {
		doc.Comments = append(doc.Comments, toCommentDocument(c))
	}
	return doc
}

func (d taskDocument) toDomain() domain.Task {
	task := domain.Task{
		ID:             d.ID,
		Title:          d.Title,
		Description:    d.Description,
		ProjectID:      d.Project,
		AssignedTo:     toUserIDs(d.AssignedTo),
		CreatedBy:      domain.UserID(d.CreatedBy),
		Status:         domain.TaskStatus(d.Status),
		Priority:       domain.TaskPriority(d.Priority),
		DueDate:        d.DueDate,
		CompletedAt:    d.CompletedAt,
		Attachments:    make([]domain.Attachment, 0, len(d.Attachments)),
		Comments:       make([]domain.Comment, 0, len(d.Comments)),
		Labels:         nonNil(d.Labels),
		EstimatedHours: d.EstimatedHours,
		ActualHours:    d.ActualHours,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
	for _, a := range d.Attachments {
		task.Attachments = append(task.Attachments, domain.Attachment{
			Filename:   a.Filename,
			Path:       a.Path,
			Size:       a.Size,
			UploadedAt: a.UploadedAt,
		})
	}
	for _, c := range d.Comments {
		task.Comments = append(task.Comments, domain.Comment{
			Author:    domain.UserID(c.User),
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		})
	}
	return task
}

func toAttachmentDocuments(attachments []domain.Attachment) []attachmentDocument {
	docs := make([]attachmentDocument, 0, len(attachments))
	for _, a := range attachments {
		docs = append(docs, attachmentDocument{
			Filename:   a.Filename,
			Path:       a.Path,
			Size:       a.Size,
			UploadedAt: a.UploadedAt,
		})
	}
	return docs
}

func toCommentDocument(c domain.Comment) commentDocument {
	return commentDocument{User: string(c.Author), Text: c.Text, CreatedAt: c.CreatedAt}
}

func fromUserIDs(ids []domain.UserID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, string(id))
	}
	return out
}

func toUserIDs(ids []string) []domain.UserID {
	out := make([]domain.UserID, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.UserID(id))
	}
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
