package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"projecthub/internal/adapter/http/dto"
	"projecthub/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.CreateTaskInput{
		Title:          title,
		AssignedTo:     toUserIDs(req.AssignedTo),
		Labels:         req.Labels,
		EstimatedHours: req.EstimatedHours,
	}
	if req.Description != nil {
		input.Description = *req.Description
	}
	if req.Status != nil {
		input.Status = domain.TaskStatus(*req.Status)
	}
	if req.Priority != nil {
		input.Priority = domain.TaskPriority(*req.Priority)
	}

	if req.DueDate != nil {
		dueDate, err := parseDate(*req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.DueDate = &dueDate
	}

	return input, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	for _, field := range []string{"title", "status", "priority"} {
		if rejectsNull(raw, field) {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	input := domain.UpdateTaskInput{
		Description:       req.Description,
		AssignedTo:        toUserIDs(req.AssignedTo),
		AssignedToSet:     hasJSONField(raw, "assignedTo"),
		Labels:            req.Labels,
		LabelsSet:         hasJSONField(raw, "labels"),
		EstimatedHours:    req.EstimatedHours,
		EstimatedHoursSet: hasJSONField(raw, "estimatedHours"),
		ActualHours:       req.ActualHours,
		ActualHoursSet:    hasJSONField(raw, "actualHours"),
	}

	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Title = &value
	}

	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		input.Status = &value
	}

	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		input.Priority = &value
	}

	var err error
	input.DueDate, input.DueDateSet, err = parseNullableDate(raw, "dueDate", req.DueDate)
	if err != nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	input.CompletedAt, input.CompletedAtSet, err = parseNullableDate(raw, "completedAt", req.CompletedAt)
	if err != nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	if hasJSONField(raw, "attachments") {
		input.AttachmentsSet = true
		input.Attachments, err = buildAttachments(req.Attachments)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	return input, nil
}

func buildAttachments(reqs []dto.AttachmentRequest) ([]domain.Attachment, error) {
	attachments := make([]domain.Attachment, 0, len(reqs))
	for _, req := range reqs {
		attachment := domain.Attachment{
			Filename: req.Filename,
			Path:     req.Path,
			Size:     req.Size,
		}
		if req.UploadedAt != nil {
			uploadedAt, err := parseDate(*req.UploadedAt)
			if err != nil {
				return nil, err
			}
			attachment.UploadedAt = uploadedAt
		}
		attachments = append(attachments, attachment)
	}
	return attachments, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasAnyField(raw,
		"title", "description", "assignedTo", "status", "priority", "dueDate",
		"completedAt", "labels", "estimatedHours", "actualHours", "attachments",
	)
}

func toUserIDs(ids []string) []domain.UserID {
	if ids == nil {
		return nil
	}
	out := make([]domain.UserID, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.UserID(id))
	}
	return out
}
