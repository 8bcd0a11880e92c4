package tests

// Mock generation for handler tests.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name ActionService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename action_service_mock.go --with-expecter
//go:generate mockery --name ScheduleService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename schedule_service_mock.go --with-expecter
