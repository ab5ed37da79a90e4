package ports

import (
	"context"

	"projecthub/internal/core/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) error
	GetUserByID(ctx context.Context, id domain.UserID) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	// GetUsersByIDs returns the users that exist among ids, in no particular order.
	GetUsersByIDs(ctx context.Context, ids []domain.UserID) ([]domain.User, error)
}

type ProjectRepository interface {
	CreateProject(ctx context.Context, project domain.Project) error
	GetProject(ctx context.Context, id string) (domain.Project, error)
	ListProjectsForUser(ctx context.Context, userID domain.UserID) ([]domain.Project, error)
	UpdateProject(ctx context.Context, project domain.Project) error
	DeleteProject(ctx context.Context, id string) error
	AddTeamMember(ctx context.Context, projectID string, memberID domain.UserID) error
	RemoveTeamMember(ctx context.Context, projectID string, memberID domain.UserID) error
}

type TaskRepository interface {
	CreateTask(ctx context.Context, task domain.Task) error
	GetTask(ctx context.Context, id string) (domain.Task, error)
	ListProjectTasks(ctx context.Context, projectID string) ([]domain.Task, error)
	// UpdateTask persists every mutable field except comments.
	UpdateTask(ctx context.Context, task domain.Task) error
	DeleteTask(ctx context.Context, id string) error
	DeleteProjectTasks(ctx context.Context, projectID string) (int64, error)
	AddComment(ctx context.Context, taskID string, comment domain.Comment) error
	CountTasksByStatus(ctx context.Context, projectID string) ([]domain.StatusBucket, error)
}

// Transactor runs fn as one unit of work. Stores without transactions run fn directly.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
