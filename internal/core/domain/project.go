package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusArchived  ProjectStatus = "archived"
	ProjectStatusCompleted ProjectStatus = "completed"
)

const DefaultProjectColor = "#3b82f6"

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusArchived, ProjectStatusCompleted:
		return true
	}
	return false
}

type Project struct {
	ID          string
	Name        string
	Description string
	OwnerID     UserID
	Team        []UserID
	Status      ProjectStatus
	Color       string
	StartDate   time.Time
	EndDate     *time.Time
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasMember reports whether id was granted team access. The owner is not a member.
func (p Project) HasMember(id UserID) bool {
	return slices.Contains(p.Team, id)
}

// ProjectDetails is a project together with the task summary shown on its page.
type ProjectDetails struct {
	Project Project
	Stats   TaskStats
}

type CreateProjectInput struct {
	Name        string
	Description string
	Color       string
	StartDate   *time.Time
	EndDate     *time.Time
	Tags        []string
}

type UpdateProjectInput struct {
	Name        *string
	Description *string
	Status      *ProjectStatus
	Color       *string
	StartDate   *time.Time
	EndDate     *time.Time
	EndDateSet  bool
	Tags        []string
	TagsSet     bool
}

// Apply patches p in place. It fails without touching p when a field is invalid.
func (in UpdateProjectInput) Apply(p *Project) error {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.Status != nil && !in.Status.Valid() {
		return fmt.Errorf("%w: unknown project status %q", ErrInvalidInput, *in.Status)
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.Color != nil {
		p.Color = *in.Color
	}
	if in.StartDate != nil {
		p.StartDate = *in.StartDate
	}
	if in.EndDateSet {
		p.EndDate = in.EndDate
	}
	if in.TagsSet {
		p.Tags = UniqueStrings(in.Tags)
	}
	return nil
}

// UniqueStrings drops duplicates and keeps first-seen order. It never returns nil.
func UniqueStrings(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// UniqueUserIDs is UniqueStrings for identities.
func UniqueUserIDs(values []UserID) []UserID {
	out := make([]UserID, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
