package service_test

import (
	"context"
	"testing"
	"time"

	"projecthub/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestTaskService_CreateTask_AppliesDefaults(t *testing.T) {
	f := newFixture(t)
	project := f.createProject(t, alice, "Board")

	task, err := f.tasks.CreateTask(context.Background(), alice, project.ID, domain.CreateTaskInput{Title: " Write docs "})
	require.NoError(t, err)

	require.Equal(t, "Write docs", task.Title)
	require.Equal(t, project.ID, task.ProjectID)
	require.Equal(t, alice, task.CreatedBy)
	require.Equal(t, domain.TaskStatusTodo, task.Status)
	require.Equal(t, domain.TaskPriorityMedium, task.Priority)
	require.Empty(t, task.AssignedTo)
	require.Empty(t, task.Labels)
	require.Nil(t, task.CompletedAt)
}

func TestTaskService_CreateTask_RequiresProjectAccess(t *testing.T) {
	f := newFixture(t)
	project := f.createProject(t, alice, "Board")

	_, err := f.tasks.CreateTask(context.Background(), bob, project.ID, domain.CreateTaskInput{Title: "Sneaky"})
	require.ErrorIs(t, err, domain.ErrProjectNotFound)

	_, err = f.tasks.CreateTask(context.Background(), alice, "missing", domain.CreateTaskInput{Title: "Lost"})
	require.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestTaskService_CreateTask_ValidatesInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	project := f.createProject(t, alice, "Board")

	_, err := f.tasks.CreateTask(ctx, alice, project.ID, domain.CreateTaskInput{Title: "  "})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.tasks.CreateTask(ctx, alice, project.ID, domain.CreateTaskInput{Title: "x", Priority: "critical"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.tasks.CreateTask(ctx, alice, project.ID, domain.CreateTaskInput{Title: "x", Status: "blocked"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaskService_ListProjectTasks_NewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	project := f.createProject(t, alice, "Board")
	older := f.createTask(t, alice, project.ID, domain.CreateTaskInput{Title: "older"})
	newer := f.createTask(t, alice, project.ID, domain.CreateTaskInput{Title: "newer"})

	tasks, err := f.tasks.ListProjectTasks(ctx, alice, project.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, newer.ID, tasks[0].ID)
	require.Equal(t, older.ID, tasks[1].ID)

	_, err = f.tasks.ListProjectTasks(ctx, bob, project.ID)
	require.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestTaskService_TaskAccessFollowsProjectAccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	project := f.createProject(t, alice, "Board")
	task := f.createTask(t, alice, project.ID, domain.CreateTaskInput{Title: "shared later"})

	_, err := f.tasks.GetTask(ctx, bob, task.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.projects.AddTeamMember(ctx, alice, project.ID, bob)
	require.NoError(t, err)
	_, err = f.tasks.GetTask(ctx, bob, task.ID)
	require.NoError(t, err)

	_, err = f.projects.RemoveTeamMember(ctx, alice, project.ID, bob)
	require.NoError(t, err)
	_, err = f.tasks.GetTask(ctx, bob, task.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.tasks.GetTask(ctx, alice, "missing")
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskService_UpdateTask_StampsCompletedAtOnTransitionToDone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	project := f.createProject(t, alice, "Board")
	task := f.createTask(t, alice, project.ID, domain.CreateTaskInput{Title: "finish me"})

	supplied := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	done := domain.TaskStatusDone
	updateTime := f.clock.Now()

	updated, err := f.tasks.UpdateTask(ctx, alice, task.ID, domain.UpdateTaskInput{
		Status:         &done,
		CompletedAt:    &supplied,
		CompletedAtSet: true,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedAt)
	require.Equal(t, updateTime, *updated.CompletedAt)

	stored, err := f.tasks.GetTask(ctx, alice, task.ID)
	require.NoError(t, err)
	require.Equal(t, updateTime, *stored.CompletedAt)
}

func TestTaskService_UpdateTask_DoneToDoneKeepsSuppliedCompletedAt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	project := f.createProject(t, alice, "Board")
	task := f.createTask(t, alice, project.ID, domain.CreateTaskInput{Title: "already done", Status: domain.TaskStatusDone})
	require.NotNil(t, task.CompletedAt)

	supplied := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	done := domain.TaskStatusDone
	updated, err := f.tasks.UpdateTask(ctx, alice, task.ID, domain.UpdateTaskInput{
		Status:         &done,
		CompletedAt:    &supplied,
		CompletedAtSet: true,
	})
	require.NoError(t, err)
	require.Equal(t, supplied, *updated.CompletedAt)
}

func TestTaskService_UpdateTask_NonDoneTransitionsLeaveCompletedAtAlone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	project := f.createProject(t, alice, "Board")
	task := f.createTask(t, alice, project.ID, domain.CreateTaskInput{Title: "moving"})

	for _, status := range []domain.TaskStatus{domain.TaskStatusInProgress, domain.TaskStatusReview, domain.TaskStatusTodo} {
		status := status
		updated, err := f.tasks.UpdateTask(ctx, alice, task.ID, domain.UpdateTaskInput{Status: &status})
		require.NoError(t, err)
		require.Equal(t, status, updated.Status)
		require.Nil(t, updated.CompletedAt)
	}
}

func TestTaskService_UpdateTask_AnyMemberMayUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	project := f.createProject(t, alice, "Board")
	_, err := f.projects.AddTeamMember(ctx, alice, project.ID, bob)
	require.NoError(t, err)
	task := f.createTask(t, alice, project.ID, domain.CreateTaskInput{Title: "alice's task"})

	high := domain.TaskPriorityHigh
	updated, err := f.tasks.UpdateTask(ctx, bob, task.ID, domain.UpdateTaskInput{
		Priority:          &high,
		Labels:            []string{"backend", "backend"},
		LabelsSet:         true,
		EstimatedHours:    ptr(3.0),
		EstimatedHoursSet: true,
		Attachments:       []domain.Attachment{{Filename: "brief.pdf", Path: "/uploads/brief.pdf", Size: 1024}},
		AttachmentsSet:    true,
	})
	require.NoError(t, err)
	require.Equal(t, domain.TaskPriorityHigh, updated.Priority)
	require.Equal(t, []string{"backend"}, updated.Labels)
	require.Equal(t, 3.0, *updated.EstimatedHours)
	require.Len(t, updated.Attachments, 1)
	require.Equal(t, f.clock.Now(), updated.Attachments[0].UploadedAt)
	require.Equal(t, alice, updated.CreatedBy)

	_, err = f.tasks.UpdateTask(ctx, charlie, task.ID, domain.UpdateTaskInput{Priority: &high})
	require.ErrorIs(t, err, domain.ErrForbidden)

	urgent := domain.TaskPriority("whenever")
	_, err = f.tasks.UpdateTask(ctx, bob, task.ID, domain.UpdateTaskInput{Priority: &urgent})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaskService_DeleteTask_OwnerOrCreatorOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	project := f.createProject(t, alice, "Board")
	for _, member := range []domain.UserID{bob, charlie} {
		_, err := f.projects.AddTeamMember(ctx, alice, project.ID, member)
		require.NoError(t, err)
	}
	byBob := f.createTask(t, bob, project.ID, domain.CreateTaskInput{Title: "bob's"})
	byCharlie := f.createTask(t, charlie, project.ID, domain.CreateTaskInput{Title: "charlie's"})

	require.ErrorIs(t, f.tasks.DeleteTask(ctx, charlie, byBob.ID), domain.ErrForbidden)

	low := domain.TaskPriorityLow
	_, err := f.tasks.UpdateTask(ctx, charlie, byBob.ID, domain.UpdateTaskInput{Priority: &low})
	require.NoError(t, err)

	require.NoError(t, f.tasks.DeleteTask(ctx, bob, byBob.ID))
	require.NoError(t, f.tasks.DeleteTask(ctx, alice, byCharlie.ID))

	require.ErrorIs(t, f.tasks.DeleteTask(ctx, alice, byBob.ID), domain.ErrTaskNotFound)
}

func TestTaskService_AddComment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	project := f.createProject(t, alice, "Board")
	task := f.createTask(t, alice, project.ID, domain.CreateTaskInput{Title: "discuss"})

	_, err := f.tasks.AddComment(ctx, alice, task.ID, "  ")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.tasks.AddComment(ctx, bob, task.ID, "hi")
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.tasks.AddComment(ctx, alice, "missing", "hi")
	require.ErrorIs(t, err, domain.ErrTaskNotFound)

	commentedAt := f.clock.Now()
	updated, err := f.tasks.AddComment(ctx, alice, task.ID, "  ok  ")
	require.NoError(t, err)
	require.Equal(t, []domain.Comment{{Author: alice, Text: "ok", CreatedAt: commentedAt}}, updated.Comments)

	f.clock.Advance(time.Minute)
	updated, err = f.tasks.AddComment(ctx, alice, task.ID, "second")
	require.NoError(t, err)
	require.Len(t, updated.Comments, 2)
	require.Equal(t, "ok", updated.Comments[0].Text)
	require.Equal(t, "second", updated.Comments[1].Text)

	title := "renamed"
	updated, err = f.tasks.UpdateTask(ctx, alice, task.ID, domain.UpdateTaskInput{Title: &title})
	require.NoError(t, err)
	require.Len(t, updated.Comments, 2)
}

func TestTaskService_GetTaskStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	project := f.createProject(t, alice, "Board")
	for i := 0; i < 3; i++ {
		f.createTask(t, alice, project.ID, domain.CreateTaskInput{Title: "todo"})
	}
	f.createTask(t, alice, project.ID, domain.CreateTaskInput{Title: "done", Status: domain.TaskStatusDone, EstimatedHours: ptr(4.0)})
	f.createTask(t, alice, project.ID, domain.CreateTaskInput{Title: "done", Status: domain.TaskStatusDone, EstimatedHours: ptr(6.0)})

	stats, err := f.tasks.GetTaskStats(ctx, alice, project.ID)
	require.NoError(t, err)
	require.Equal(t, domain.TaskStats{Todo: 3, InProgress: 0, Review: 0, Done: 2, Total: 5, TotalHours: 10}, stats)

	empty := f.createProject(t, alice, "Empty")
	stats, err = f.tasks.GetTaskStats(ctx, alice, empty.ID)
	require.NoError(t, err)
	require.Equal(t, domain.TaskStats{}, stats)

	_, err = f.tasks.GetTaskStats(ctx, bob, project.ID)
	require.ErrorIs(t, err, domain.ErrProjectNotFound)
}
