package domain_test

import (
	"testing"

	"projecthub/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestFoldStatusBuckets_KeepsEveryStatus(t *testing.T) {
	hours := func(v float64) *float64 { return &v }
	tasks := []domain.Task{
		{Status: domain.TaskStatusTodo},
		{Status: domain.TaskStatusTodo, EstimatedHours: hours(1.5)},
		{Status: domain.TaskStatusDone, EstimatedHours: hours(4)},
		{Status: "legacy", EstimatedHours: hours(2)},
	}

	stats := domain.FoldStatusBuckets(domain.GroupTasksByStatus(tasks))

	assert.Equal(t, domain.TaskStats{Todo: 2, Done: 1, Total: 4, TotalHours: 7.5}, stats)
}

func TestFoldStatusBuckets_Empty(t *testing.T) {
	assert.Equal(t, domain.TaskStats{}, domain.FoldStatusBuckets(nil))
}
