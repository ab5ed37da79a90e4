package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"projecthub/internal/core/domain"
	"projecthub/internal/core/ports"
	"projecthub/pkg/clock"
)

type ProjectService struct {
	projectRepository ports.ProjectRepository
	cascade           *CascadeCoordinator
	reporter          *StatsReporter
	clock             clock.Clock
}

func NewProjectService(
	projectRepository ports.ProjectRepository,
	cascade *CascadeCoordinator,
	reporter *StatsReporter,
	clk clock.Clock,
) *ProjectService {
	return &ProjectService{
		projectRepository: projectRepository,
		cascade:           cascade,
		reporter:          reporter,
		clock:             clk,
	}
}

var _ ports.ProjectService = (*ProjectService)(nil)

func (s *ProjectService) CreateProject(ctx context.Context, owner domain.UserID, input domain.CreateProjectInput) (domain.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.Project{}, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if owner == "" {
		return domain.Project{}, fmt.Errorf("%w: owner is required", domain.ErrInvalidInput)
	}

	now := s.clock.Now()
	project := domain.Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: input.Description,
		OwnerID:     owner,
		Team:        []domain.UserID{},
		Status:      domain.ProjectStatusActive,
		Color:       input.Color,
		StartDate:   now,
		EndDate:     input.EndDate,
		Tags:        domain.UniqueStrings(input.Tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if project.Color == "" {
		project.Color = domain.DefaultProjectColor
	}
	if input.StartDate != nil {
		project.StartDate = *input.StartDate
	}

	if err := s.projectRepository.CreateProject(ctx, project); err != nil {
		return domain.Project{}, fmt.Errorf("create project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, identity domain.UserID, projectID string) (domain.Project, error) {
	project, err := loadProject(ctx, s.projectRepository, projectID)
	if err != nil {
		return domain.Project{}, err
	}
	if err := domain.DecideProjectRead(identity, project).Err(domain.ErrProjectNotFound); err != nil {
		return domain.Project{}, err
	}
	return *project, nil
}

func (s *ProjectService) GetProjectDetails(ctx context.Context, identity domain.UserID, projectID string) (domain.ProjectDetails, error) {
	project, err := s.GetProject(ctx, identity, projectID)
	if err != nil {
		return domain.ProjectDetails{}, err
	}
	stats, err := s.reporter.Summarize(ctx, project.ID)
	if err != nil {
		return domain.ProjectDetails{}, err
	}
	return domain.ProjectDetails{Project: project, Stats: stats}, nil
}

func (s *ProjectService) ListProjects(ctx context.Context, identity domain.UserID) ([]domain.Project, error) {
	projects, err := s.projectRepository.ListProjectsForUser(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	projects = slices.DeleteFunc(projects, func(p domain.Project) bool {
		return !domain.CanAccessProject(identity, p)
	})
	slices.SortStableFunc(projects, func(a, b domain.Project) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return projects, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, identity domain.UserID, projectID string, input domain.UpdateProjectInput) (domain.Project, error) {
	project, err := s.ownedProject(ctx, identity, projectID)
	if err != nil {
		return domain.Project{}, err
	}

	if err := input.Apply(&project); err != nil {
		return domain.Project{}, err
	}
	project.UpdatedAt = s.clock.Now()

	if err := s.projectRepository.UpdateProject(ctx, project); err != nil {
		return domain.Project{}, fmt.Errorf("update project %s: %w", projectID, err)
	}
	return project, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, identity domain.UserID, projectID string) error {
	if _, err := s.ownedProject(ctx, identity, projectID); err != nil {
		return err
	}
	return s.cascade.DeleteProject(ctx, projectID)
}

func (s *ProjectService) AddTeamMember(ctx context.Context, owner domain.UserID, projectID string, memberID domain.UserID) (domain.Project, error) {
	project, err := s.ownedProject(ctx, owner, projectID)
	if err != nil {
		return domain.Project{}, err
	}
	if memberID == "" {
		return domain.Project{}, fmt.Errorf("%w: member id is required", domain.ErrInvalidInput)
	}
	// The owner keeps implicit access and never appears in the team.
	if memberID == project.OwnerID || project.HasMember(memberID) {
		return project, nil
	}

	if err := s.projectRepository.AddTeamMember(ctx, projectID, memberID); err != nil {
		return domain.Project{}, fmt.Errorf("add member to project %s: %w", projectID, err)
	}
	return s.reload(ctx, projectID)
}

func (s *ProjectService) RemoveTeamMember(ctx context.Context, owner domain.UserID, projectID string, memberID domain.UserID) (domain.Project, error) {
	project, err := s.ownedProject(ctx, owner, projectID)
	if err != nil {
		return domain.Project{}, err
	}
	if !project.HasMember(memberID) {
		return project, nil
	}

	if err := s.projectRepository.RemoveTeamMember(ctx, projectID, memberID); err != nil {
		return domain.Project{}, fmt.Errorf("remove member from project %s: %w", projectID, err)
	}
	return s.reload(ctx, projectID)
}

func (s *ProjectService) ownedProject(ctx context.Context, identity domain.UserID, projectID string) (domain.Project, error) {
	project, err := loadProject(ctx, s.projectRepository, projectID)
	if err != nil {
		return domain.Project{}, err
	}
	if err := domain.DecideProjectWrite(identity, project).Err(domain.ErrProjectNotFound); err != nil {
		return domain.Project{}, err
	}
	return *project, nil
}

func (s *ProjectService) reload(ctx context.Context, projectID string) (domain.Project, error) {
	project, err := s.projectRepository.GetProject(ctx, projectID)
	if err != nil {
		return domain.Project{}, fmt.Errorf("reload project %s: %w", projectID, err)
	}
	return project, nil
}
