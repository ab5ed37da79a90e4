package tests

// Mock generation example for handler tests. The hand-written mocks in
// mocks_test.go follow the same shape.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name ProjectService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename project_service_mock.go --with-expecter
//go:generate mockery --name TaskService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_service_mock.go --with-expecter
//go:generate mockery --name AuthService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename auth_service_mock.go --with-expecter
//go:generate mockery --name UserDirectory --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename user_directory_mock.go --with-expecter
