package domain

import (
	"fmt"
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
)

// TaskStatuses lists every status in board order.
var TaskStatuses = []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, TaskStatusDone}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, TaskStatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

type Attachment struct {
	Filename   string
	Path       string
	Size       int64
	UploadedAt time.Time
}

type Comment struct {
	Author    UserID
	Text      string
	CreatedAt time.Time
}

type Task struct {
	ID             string
	Title          string
	Description    string
	ProjectID      string
	AssignedTo     []UserID
	CreatedBy      UserID
	Status         TaskStatus
	Priority       TaskPriority
	DueDate        *time.Time
	CompletedAt    *time.Time
	Attachments    []Attachment
	Comments       []Comment
	Labels         []string
	EstimatedHours *float64
	ActualHours    *float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CreateTaskInput struct {
	Title          string
	Description    string
	AssignedTo     []UserID
	Status         TaskStatus
	Priority       TaskPriority
	DueDate        *time.Time
	Labels         []string
	EstimatedHours *float64
}

func (in CreateTaskInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if in.Status != "" && !in.Status.Valid() {
		return fmt.Errorf("%w: unknown task status %q", ErrInvalidInput, in.Status)
	}
	if in.Priority != "" && !in.Priority.Valid() {
		return fmt.Errorf("%w: unknown task priority %q", ErrInvalidInput, in.Priority)
	}
	return nil
}

type UpdateTaskInput struct {
	Title             *string
	Description       *string
	AssignedTo        []UserID
	AssignedToSet     bool
	Status            *TaskStatus
	Priority          *TaskPriority
	DueDate           *time.Time
	DueDateSet        bool
	CompletedAt       *time.Time
	CompletedAtSet    bool
	Labels            []string
	LabelsSet         bool
	EstimatedHours    *float64
	EstimatedHoursSet bool
	ActualHours       *float64
	ActualHoursSet    bool
	Attachments       []Attachment
	AttachmentsSet    bool
}

// Apply patches t in place. Moving a task into done from any other status stamps
// CompletedAt with now, overriding a caller-supplied value; otherwise a supplied
// CompletedAt is copied as is.
func (in UpdateTaskInput) Apply(t *Task, now time.Time) error {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if in.Status != nil && !in.Status.Valid() {
		return fmt.Errorf("%w: unknown task status %q", ErrInvalidInput, *in.Status)
	}
	if in.Priority != nil && !in.Priority.Valid() {
		return fmt.Errorf("%w: unknown task priority %q", ErrInvalidInput, *in.Priority)
	}

	completing := in.Status != nil && *in.Status == TaskStatusDone && t.Status != TaskStatusDone

	if in.Title != nil {
		t.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.AssignedToSet {
		t.AssignedTo = UniqueUserIDs(in.AssignedTo)
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.DueDateSet {
		t.DueDate = in.DueDate
	}
	if in.LabelsSet {
		t.Labels = UniqueStrings(in.Labels)
	}
	if in.EstimatedHoursSet {
		t.EstimatedHours = in.EstimatedHours
	}
	if in.ActualHoursSet {
		t.ActualHours = in.ActualHours
	}
	if in.AttachmentsSet {
		attachments := make([]Attachment, 0, len(in.Attachments))
		for _, a := range in.Attachments {
			if a.UploadedAt.IsZero() {
				a.UploadedAt = now
			}
			attachments = append(attachments, a)
		}
		t.Attachments = attachments
	}

	switch {
	case completing:
		stamp := now
		t.CompletedAt = &stamp
	case in.CompletedAtSet:
		t.CompletedAt = in.CompletedAt
	}
	return nil
}
