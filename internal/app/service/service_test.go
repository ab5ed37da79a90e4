package service_test

import (
	"context"
	"testing"
	"time"

	"projecthub/internal/adapter/memory"
	"projecthub/internal/app/service"
	"projecthub/internal/core/domain"
	"projecthub/pkg/clock"

	"github.com/stretchr/testify/require"
)

const (
	alice   domain.UserID = "user-alice"
	bob     domain.UserID = "user-bob"
	charlie domain.UserID = "user-charlie"
)

type fixture struct {
	store    *memory.Store
	clock    *clock.FakeClock
	projects *service.ProjectService
	tasks    *service.TaskService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.NewStore()
	clk := clock.Fake(time.Date(2026, 2, 13, 10, 0, 0, 0, time.UTC))
	reporter := service.NewStatsReporter(store)
	cascade := service.NewCascadeCoordinator(store, store, store)

	return &fixture{
		store:    store,
		clock:    clk,
		projects: service.NewProjectService(store, cascade, reporter, clk),
		tasks:    service.NewTaskService(store, store, reporter, clk),
	}
}

func (f *fixture) createProject(t *testing.T, owner domain.UserID, name string) domain.Project {
	t.Helper()
	project, err := f.projects.CreateProject(context.Background(), owner, domain.CreateProjectInput{Name: name})
	require.NoError(t, err)
	f.clock.Advance(time.Second)
	return project
}

func (f *fixture) createTask(t *testing.T, identity domain.UserID, projectID string, input domain.CreateTaskInput) domain.Task {
	t.Helper()
	task, err := f.tasks.CreateTask(context.Background(), identity, projectID, input)
	require.NoError(t, err)
	f.clock.Advance(time.Second)
	return task
}

func ptr[T any](v T) *T {
	return &v
}
