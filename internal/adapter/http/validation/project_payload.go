package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"projecthub/internal/adapter/http/dto"
	"projecthub/internal/core/domain"
)

var ErrInvalidProjectPayload = errors.New("invalid project payload")

func BuildCreateProjectInput(req dto.CreateProjectRequest) (domain.CreateProjectInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateProjectInput{}, ErrInvalidProjectPayload
	}

	input := domain.CreateProjectInput{
		Name: name,
		Tags: req.Tags,
	}
	if req.Description != nil {
		input.Description = *req.Description
	}
	if req.Color != nil {
		input.Color = *req.Color
	}

	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			return domain.CreateProjectInput{}, ErrInvalidProjectPayload
		}
		input.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			return domain.CreateProjectInput{}, ErrInvalidProjectPayload
		}
		input.EndDate = &end
	}

	return input, nil
}

func BuildUpdateProjectInput(req dto.UpdateProjectRequest, raw map[string]json.RawMessage) (domain.UpdateProjectInput, error) {
	if !hasAnyField(raw, "name", "description", "status", "color", "startDate", "endDate", "tags") {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}
	for _, field := range []string{"name", "status", "color", "startDate"} {
		if rejectsNull(raw, field) {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
	}

	input := domain.UpdateProjectInput{
		Description: req.Description,
		Color:       req.Color,
		Tags:        req.Tags,
		TagsSet:     hasJSONField(raw, "tags"),
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		input.Name = &name
	}

	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		input.Status = &status
	}

	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		input.StartDate = &start
	}

	var err error
	input.EndDate, input.EndDateSet, err = parseNullableDate(raw, "endDate", req.EndDate)
	if err != nil {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}

	return input, nil
}
