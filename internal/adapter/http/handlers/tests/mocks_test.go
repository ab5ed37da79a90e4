package tests

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"projecthub/internal/adapter/http/middleware"
	"projecthub/internal/core/domain"
	"projecthub/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

const (
	aliceToken = "alice-token"

	alice     domain.UserID = "0b6b1f4e-3f7e-4c55-9a55-111111111111"
	bob       domain.UserID = "0b6b1f4e-3f7e-4c55-9a55-222222222222"
	projectID               = "5f0c2d4a-7a6e-4b8e-8f6f-333333333333"
	taskID                  = "5f0c2d4a-7a6e-4b8e-8f6f-444444444444"
)

// staticVerifier accepts a fixed set of tokens.
type staticVerifier map[string]domain.UserID

func (v staticVerifier) Verify(token string) (domain.UserID, error) {
	id, ok := v[token]
	if !ok {
		return "", errors.New("unknown token")
	}
	return id, nil
}

var (
	aliceSummary = domain.UserSummary{ID: alice, Name: "Alice", Email: "alice@example.com"}
	bobSummary   = domain.UserSummary{ID: bob, Name: "Bob", Email: "bob@example.com"}
)

func newRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.LanguageMiddleware(), middleware.AuthMiddleware(staticVerifier{aliceToken: alice}))
	return router
}

func newRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", "Bearer "+aliceToken)
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type projectServiceMock struct {
	mock.Mock
}

func (m *projectServiceMock) CreateProject(ctx context.Context, owner domain.UserID, input domain.CreateProjectInput) (domain.Project, error) {
	args := m.Called(ctx, owner, input)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) GetProject(ctx context.Context, identity domain.UserID, projectID string) (domain.Project, error) {
	args := m.Called(ctx, identity, projectID)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) GetProjectDetails(ctx context.Context, identity domain.UserID, projectID string) (domain.ProjectDetails, error) {
	args := m.Called(ctx, identity, projectID)
	return args.Get(0).(domain.ProjectDetails), args.Error(1)
}

func (m *projectServiceMock) ListProjects(ctx context.Context, identity domain.UserID) ([]domain.Project, error) {
	args := m.Called(ctx, identity)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *projectServiceMock) UpdateProject(ctx context.Context, identity domain.UserID, projectID string, input domain.UpdateProjectInput) (domain.Project, error) {
	args := m.Called(ctx, identity, projectID, input)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) DeleteProject(ctx context.Context, identity domain.UserID, projectID string) error {
	args := m.Called(ctx, identity, projectID)
	return args.Error(0)
}

func (m *projectServiceMock) AddTeamMember(ctx context.Context, owner domain.UserID, projectID string, memberID domain.UserID) (domain.Project, error) {
	args := m.Called(ctx, owner, projectID, memberID)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) RemoveTeamMember(ctx context.Context, owner domain.UserID, projectID string, memberID domain.UserID) (domain.Project, error) {
	args := m.Called(ctx, owner, projectID, memberID)
	return args.Get(0).(domain.Project), args.Error(1)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, identity domain.UserID, projectID string, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, identity, projectID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ListProjectTasks(ctx context.Context, identity domain.UserID, projectID string) ([]domain.Task, error) {
	args := m.Called(ctx, identity, projectID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, identity domain.UserID, taskID string) (domain.Task, error) {
	args := m.Called(ctx, identity, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, identity domain.UserID, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, identity, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, identity domain.UserID, taskID string) error {
	args := m.Called(ctx, identity, taskID)
	return args.Error(0)
}

func (m *taskServiceMock) AddComment(ctx context.Context, identity domain.UserID, taskID string, text string) (domain.Task, error) {
	args := m.Called(ctx, identity, taskID, text)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) GetTaskStats(ctx context.Context, identity domain.UserID, projectID string) (domain.TaskStats, error) {
	args := m.Called(ctx, identity, projectID)
	return args.Get(0).(domain.TaskStats), args.Error(1)
}

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, input domain.RegisterUserInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(domain.User), args.Error(2)
}

func (m *authServiceMock) Profile(ctx context.Context, id domain.UserID) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

type userDirectoryMock struct {
	mock.Mock
}

func (m *userDirectoryMock) Summaries(ctx context.Context, ids []domain.UserID) (map[domain.UserID]domain.UserSummary, error) {
	args := m.Called(ctx, ids)

	var summaries map[domain.UserID]domain.UserSummary
	if value := args.Get(0); value != nil {
		summaries = value.(map[domain.UserID]domain.UserSummary)
	}
	return summaries, args.Error(1)
}

// knownUsers resolves alice and bob for any lookup.
func knownUsers() *userDirectoryMock {
	directory := new(userDirectoryMock)
	directory.On("Summaries", mock.Anything, mock.Anything).Return(
		map[domain.UserID]domain.UserSummary{alice: aliceSummary, bob: bobSummary}, nil,
	)
	return directory
}
