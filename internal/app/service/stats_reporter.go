package service

import (
	"context"
	"fmt"

	"projecthub/internal/core/domain"
	"projecthub/internal/core/ports"
)

// StatsReporter summarizes a project's tasks per status. Callers authorize first.
type StatsReporter struct {
	taskRepository ports.TaskRepository
}

func NewStatsReporter(taskRepository ports.TaskRepository) *StatsReporter {
	return &StatsReporter{taskRepository: taskRepository}
}

func (r *StatsReporter) Summarize(ctx context.Context, projectID string) (domain.TaskStats, error) {
	buckets, err := r.taskRepository.CountTasksByStatus(ctx, projectID)
	if err != nil {
		return domain.TaskStats{}, fmt.Errorf("count tasks of project %s: %w", projectID, err)
	}
	return domain.FoldStatusBuckets(buckets), nil
}
