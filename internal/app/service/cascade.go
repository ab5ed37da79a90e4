package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"projecthub/internal/core/ports"
)

// CascadeCoordinator removes a project together with every task that references it.
type CascadeCoordinator struct {
	projectRepository ports.ProjectRepository
	taskRepository    ports.TaskRepository
	transactor        ports.Transactor
}

func NewCascadeCoordinator(
	projectRepository ports.ProjectRepository,
	taskRepository ports.TaskRepository,
	transactor ports.Transactor,
) *CascadeCoordinator {
	return &CascadeCoordinator{
		projectRepository: projectRepository,
		taskRepository:    taskRepository,
		transactor:        transactor,
	}
}

// DeleteProject deletes the project first, then its tasks. Both steps share one
// transaction when the store has them; otherwise a failure of the second step
// leaves orphaned tasks and is reported as an error.
func (c *CascadeCoordinator) DeleteProject(ctx context.Context, projectID string) error {
	var removed int64
	err := c.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := c.projectRepository.DeleteProject(ctx, projectID); err != nil {
			return fmt.Errorf("delete project %s: %w", projectID, err)
		}
		n, err := c.taskRepository.DeleteProjectTasks(ctx, projectID)
		if err != nil {
			return fmt.Errorf("delete tasks of project %s: %w", projectID, err)
		}
		removed = n
		return nil
	})
	if err != nil {
		return err
	}

	zap.L().Info("project deleted", zap.String("project_id", projectID), zap.Int64("tasks_removed", removed))
	return nil
}
