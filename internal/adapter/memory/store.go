// Package memory keeps users, projects and tasks in process memory. It backs the
// "memory" store driver for local runs and the service tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"projecthub/internal/core/domain"
	"projecthub/internal/core/ports"
)

type Store struct {
	mu       sync.RWMutex
	users    map[domain.UserID]domain.User
	projects map[string]domain.Project
	tasks    map[string]domain.Task
}

var (
	_ ports.UserRepository    = (*Store)(nil)
	_ ports.ProjectRepository = (*Store)(nil)
	_ ports.TaskRepository    = (*Store)(nil)
	_ ports.Transactor        = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		users:    make(map[domain.UserID]domain.User),
		projects: make(map[string]domain.Project),
		tasks:    make(map[string]domain.Task),
	}
}

// WithinTransaction runs fn directly; the memory store has no rollback.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *Store) CreateUser(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	s.users[user.ID] = user
	return nil
}

func (s *Store) GetUserByID(_ context.Context, id domain.UserID) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (s *Store) GetUsersByIDs(_ context.Context, ids []domain.UserID) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := s.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

func (s *Store) CreateProject(_ context.Context, project domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[project.ID] = cloneProject(project)
	return nil
}

func (s *Store) GetProject(_ context.Context, id string) (domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	project, ok := s.projects[id]
	if !ok {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	return cloneProject(project), nil
}

func (s *Store) ListProjectsForUser(_ context.Context, userID domain.UserID) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	projects := make([]domain.Project, 0)
	for _, project := range s.projects {
		if project.OwnerID == userID || project.HasMember(userID) {
			projects = append(projects, cloneProject(project))
		}
	}
	slices.SortFunc(projects, func(a, b domain.Project) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return projects, nil
}

func (s *Store) UpdateProject(_ context.Context, project domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.projects[project.ID]
	if !ok {
		return domain.ErrProjectNotFound
	}
	// Owner and team are changed through their own operations only.
	project.OwnerID = current.OwnerID
	project.Team = current.Team
	project.CreatedAt = current.CreatedAt
	s.projects[project.ID] = cloneProject(project)
	return nil
}

func (s *Store) DeleteProject(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(s.projects, id)
	return nil
}

func (s *Store) AddTeamMember(_ context.Context, projectID string, memberID domain.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, ok := s.projects[projectID]
	if !ok {
		return domain.ErrProjectNotFound
	}
	if !project.HasMember(memberID) {
		project.Team = append(slices.Clone(project.Team), memberID)
		s.projects[projectID] = project
	}
	return nil
}

func (s *Store) RemoveTeamMember(_ context.Context, projectID string, memberID domain.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, ok := s.projects[projectID]
	if !ok {
		return domain.ErrProjectNotFound
	}
	project.Team = slices.DeleteFunc(slices.Clone(project.Team), func(id domain.UserID) bool {
		return id == memberID
	})
	s.projects[projectID] = project
	return nil
}

func (s *Store) CreateTask(_ context.Context, task domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.ID] = cloneTask(task)
	return nil
}

func (s *Store) GetTask(_ context.Context, id string) (domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return cloneTask(task), nil
}

func (s *Store) ListProjectTasks(_ context.Context, projectID string) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projectTasks(projectID), nil
}

func (s *Store) UpdateTask(_ context.Context, task domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.tasks[task.ID]
	if !ok {
		return domain.ErrTaskNotFound
	}
	task.ProjectID = current.ProjectID
	task.CreatedBy = current.CreatedBy
	task.CreatedAt = current.CreatedAt
	task.Comments = current.Comments
	s.tasks[task.ID] = cloneTask(task)
	return nil
}

func (s *Store) DeleteTask(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (s *Store) DeleteProjectTasks(_ context.Context, projectID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for id, task := range s.tasks {
		if task.ProjectID == projectID {
			delete(s.tasks, id)
			removed++
		}
	}
	return removed, nil
}

func (s *Store) AddComment(_ context.Context, taskID string, comment domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[taskID]
	if !ok {
		return domain.ErrTaskNotFound
	}
	task.Comments = append(slices.Clone(task.Comments), comment)
	s.tasks[taskID] = task
	return nil
}

func (s *Store) CountTasksByStatus(_ context.Context, projectID string) ([]domain.StatusBucket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.GroupTasksByStatus(s.projectTasks(projectID)), nil
}

// projectTasks expects s.mu to be held.
func (s *Store) projectTasks(projectID string) []domain.Task {
	tasks := make([]domain.Task, 0)
	for _, task := range s.tasks {
		if task.ProjectID == projectID {
			tasks = append(tasks, cloneTask(task))
		}
	}
	slices.SortFunc(tasks, func(a, b domain.Task) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return tasks
}

func cloneProject(p domain.Project) domain.Project {
	p.Team = slices.Clone(p.Team)
	p.Tags = slices.Clone(p.Tags)
	return p
}

func cloneTask(t domain.Task) domain.Task {
	t.AssignedTo = slices.Clone(t.AssignedTo)
	t.Attachments = slices.Clone(t.Attachments)
	t.Comments = slices.Clone(t.Comments)
	t.Labels = slices.Clone(t.Labels)
	return t
}
