package service

import (
	"context"
	"errors"
	"fmt"

	"projecthub/internal/core/domain"
	"projecthub/internal/core/ports"
)

// loadProject returns nil, nil when the project does not exist so the access
// decision can treat absence and denial alike.
func loadProject(ctx context.Context, projects ports.ProjectRepository, id string) (*domain.Project, error) {
	project, err := projects.GetProject(ctx, id)
	if errors.Is(err, domain.ErrProjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get project %s: %w", id, err)
	}
	return &project, nil
}

func loadTask(ctx context.Context, tasks ports.TaskRepository, id string) (*domain.Task, error) {
	task, err := tasks.GetTask(ctx, id)
	if errors.Is(err, domain.ErrTaskNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task %s: %w", id, err)
	}
	return &task, nil
}
