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

type TaskService struct {
	taskRepository    ports.TaskRepository
	projectRepository ports.ProjectRepository
	reporter          *StatsReporter
	clock             clock.Clock
}

func NewTaskService(
	taskRepository ports.TaskRepository,
	projectRepository ports.ProjectRepository,
	reporter *StatsReporter,
	clk clock.Clock,
) *TaskService {
	return &TaskService{
		taskRepository:    taskRepository,
		projectRepository: projectRepository,
		reporter:          reporter,
		clock:             clk,
	}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) CreateTask(ctx context.Context, identity domain.UserID, projectID string, input domain.CreateTaskInput) (domain.Task, error) {
	if _, err := s.readableProject(ctx, identity, projectID); err != nil {
		return domain.Task{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Task{}, err
	}

	now := s.clock.Now()
	task := domain.Task{
		ID:             uuid.NewString(),
		Title:          strings.TrimSpace(input.Title),
		Description:    input.Description,
		ProjectID:      projectID,
		AssignedTo:     domain.UniqueUserIDs(input.AssignedTo),
		CreatedBy:      identity,
		Status:         input.Status,
		Priority:       input.Priority,
		DueDate:        input.DueDate,
		Attachments:    []domain.Attachment{},
		Comments:       []domain.Comment{},
		Labels:         domain.UniqueStrings(input.Labels),
		EstimatedHours: input.EstimatedHours,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusTodo
	}
	if task.Priority == "" {
		task.Priority = domain.TaskPriorityMedium
	}
	if task.Status == domain.TaskStatusDone {
		task.CompletedAt = &now
	}

	if err := s.taskRepository.CreateTask(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (s *TaskService) ListProjectTasks(ctx context.Context, identity domain.UserID, projectID string) ([]domain.Task, error) {
	if _, err := s.readableProject(ctx, identity, projectID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepository.ListProjectTasks(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks of project %s: %w", projectID, err)
	}
	slices.SortStableFunc(tasks, func(a, b domain.Task) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, identity domain.UserID, taskID string) (domain.Task, error) {
	return s.authorizedTask(ctx, identity, taskID, domain.DecideTaskAccess)
}

// UpdateTask is open to every project member, unlike DeleteTask.
func (s *TaskService) UpdateTask(ctx context.Context, identity domain.UserID, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.authorizedTask(ctx, identity, taskID, domain.DecideTaskAccess)
	if err != nil {
		return domain.Task{}, err
	}

	now := s.clock.Now()
	if err := input.Apply(&task, now); err != nil {
		return domain.Task{}, err
	}
	task.UpdatedAt = now

	if err := s.taskRepository.UpdateTask(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("update task %s: %w", taskID, err)
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, identity domain.UserID, taskID string) error {
	if _, err := s.authorizedTask(ctx, identity, taskID, domain.DecideTaskDelete); err != nil {
		return err
	}
	if err := s.taskRepository.DeleteTask(ctx, taskID); err != nil {
		return fmt.Errorf("delete task %s: %w", taskID, err)
	}
	return nil
}

func (s *TaskService) AddComment(ctx context.Context, identity domain.UserID, taskID string, text string) (domain.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Task{}, fmt.Errorf("%w: comment text is required", domain.ErrInvalidInput)
	}
	if _, err := s.authorizedTask(ctx, identity, taskID, domain.DecideTaskAccess); err != nil {
		return domain.Task{}, err
	}

	comment := domain.Comment{Author: identity, Text: text, CreatedAt: s.clock.Now()}
	if err := s.taskRepository.AddComment(ctx, taskID, comment); err != nil {
		return domain.Task{}, fmt.Errorf("add comment to task %s: %w", taskID, err)
	}

	task, err := s.taskRepository.GetTask(ctx, taskID)
	if err != nil {
		return domain.Task{}, fmt.Errorf("reload task %s: %w", taskID, err)
	}
	return task, nil
}

func (s *TaskService) GetTaskStats(ctx context.Context, identity domain.UserID, projectID string) (domain.TaskStats, error) {
	project, err := s.readableProject(ctx, identity, projectID)
	if err != nil {
		return domain.TaskStats{}, err
	}
	return s.reporter.Summarize(ctx, project.ID)
}

func (s *TaskService) readableProject(ctx context.Context, identity domain.UserID, projectID string) (domain.Project, error) {
	project, err := loadProject(ctx, s.projectRepository, projectID)
	if err != nil {
		return domain.Project{}, err
	}
	if err := domain.DecideProjectRead(identity, project).Err(domain.ErrProjectNotFound); err != nil {
		return domain.Project{}, err
	}
	return *project, nil
}

// authorizedTask loads the task and its project and applies decide. A task whose
// project no longer exists is reported as not found.
func (s *TaskService) authorizedTask(
	ctx context.Context,
	identity domain.UserID,
	taskID string,
	decide func(domain.UserID, *domain.Task, *domain.Project) domain.Decision,
) (domain.Task, error) {
	task, err := loadTask(ctx, s.taskRepository, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	var project *domain.Project
	if task != nil {
		project, err = loadProject(ctx, s.projectRepository, task.ProjectID)
		if err != nil {
			return domain.Task{}, err
		}
	}

	if err := decide(identity, task, project).Err(domain.ErrTaskNotFound); err != nil {
		return domain.Task{}, err
	}
	return *task, nil
}
