package ports

import (
	"context"

	"projecthub/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, input domain.RegisterUserInput) (domain.User, error)
	Login(ctx context.Context, email, password string) (string, domain.User, error)
	Profile(ctx context.Context, id domain.UserID) (domain.User, error)
}

type ProjectService interface {
	CreateProject(ctx context.Context, owner domain.UserID, input domain.CreateProjectInput) (domain.Project, error)
	GetProject(ctx context.Context, identity domain.UserID, projectID string) (domain.Project, error)
	GetProjectDetails(ctx context.Context, identity domain.UserID, projectID string) (domain.ProjectDetails, error)
	ListProjects(ctx context.Context, identity domain.UserID) ([]domain.Project, error)
	UpdateProject(ctx context.Context, identity domain.UserID, projectID string, input domain.UpdateProjectInput) (domain.Project, error)
	DeleteProject(ctx context.Context, identity domain.UserID, projectID string) error
	AddTeamMember(ctx context.Context, owner domain.UserID, projectID string, memberID domain.UserID) (domain.Project, error)
	RemoveTeamMember(ctx context.Context, owner domain.UserID, projectID string, memberID domain.UserID) (domain.Project, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, identity domain.UserID, projectID string, input domain.CreateTaskInput) (domain.Task, error)
	ListProjectTasks(ctx context.Context, identity domain.UserID, projectID string) ([]domain.Task, error)
	GetTask(ctx context.Context, identity domain.UserID, taskID string) (domain.Task, error)
	UpdateTask(ctx context.Context, identity domain.UserID, taskID string, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, identity domain.UserID, taskID string) error
	AddComment(ctx context.Context, identity domain.UserID, taskID string, text string) (domain.Task, error)
	GetTaskStats(ctx context.Context, identity domain.UserID, projectID string) (domain.TaskStats, error)
}

// UserDirectory resolves user references into summaries. Unknown ids are absent
// from the result.
type UserDirectory interface {
	Summaries(ctx context.Context, ids []domain.UserID) (map[domain.UserID]domain.UserSummary, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenIssuer interface {
	Issue(id domain.UserID) (string, error)
}

// TokenVerifier resolves a bearer token into the identity it was issued for.
type TokenVerifier interface {
	Verify(token string) (domain.UserID, error)
}
