package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/corpdesk/company-backend-go/internal/domain/auth"
	"github.com/corpdesk/company-backend-go/internal/domain/department"
	"github.com/corpdesk/company-backend-go/internal/domain/employee"
	"github.com/corpdesk/company-backend-go/internal/domain/project"
	"github.com/corpdesk/company-backend-go/internal/domain/report"
	"github.com/corpdesk/company-backend-go/internal/domain/user"
	"github.com/corpdesk/company-backend-go/internal/handler/http/response"
	"github.com/corpdesk/company-backend-go/internal/pkg/token"
	"github.com/corpdesk/company-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routerTestSecret = "test-secret-key-for-jwt"

type fakeAuthService struct {
	resp auth.LoginResponse
	err  error
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if f.err != nil {
		return auth.LoginResponse{}, f.err
	}
	return f.resp, nil
}

type fakeEmployeeService struct {
	employees  []employee.Employee
	deleteErr  error
	createErr  error
	lastFilter employee.SearchFilter
}

func (f *fakeEmployeeService) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if len(f.employees) == 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return f.employees[0], nil
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if f.createErr != nil {
		return employee.Employee{}, f.createErr
	}
	return employee.Employee{ID: "emp-1", Name: req.Name}, nil
}

func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{ID: id}, nil
}

func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.deleteErr
}

func (f *fakeEmployeeService) Search(ctx context.Context, filter employee.SearchFilter) ([]employee.Employee, error) {
	f.lastFilter = filter
	return f.employees, nil
}

type fakeProjectService struct {
	project.ProjectService
	deleteErr error
}

func (f *fakeProjectService) List(ctx context.Context) ([]project.Project, error) {
	return nil, nil
}

func (f *fakeProjectService) Delete(ctx context.Context, id string) error {
	return f.deleteErr
}

type fakeDepartmentService struct {
	department.DepartmentService
	deleteErr error
}

func (f *fakeDepartmentService) List(ctx context.Context) ([]department.Department, error) {
	return nil, nil
}

func (f *fakeDepartmentService) Delete(ctx context.Context, id string) error {
	return f.deleteErr
}

type fakeReportService struct {
	stats report.SalaryStatistics
}

func (f *fakeReportService) EmployeesByDepartment(ctx context.Context) ([]report.DepartmentGroup, error) {
	return []report.DepartmentGroup{}, nil
}

func (f *fakeReportService) ProjectsByStatus(ctx context.Context) ([]report.StatusGroup, error) {
	return []report.StatusGroup{}, nil
}

func (f *fakeReportService) SalaryStatistics(ctx context.Context) (report.SalaryStatistics, error) {
	return f.stats, nil
}

type routerFixture struct {
	router       *chi.Mux
	tokenService token.Service
	authSvc      *fakeAuthService
	employeeSvc  *fakeEmployeeService
	projectSvc   *fakeProjectService
	deptSvc      *fakeDepartmentService
}

func newRouterFixture() *routerFixture {
	f := &routerFixture{
		tokenService: token.NewTokenService(routerTestSecret, "1h"),
		authSvc:      &fakeAuthService{},
		employeeSvc:  &fakeEmployeeService{},
		projectSvc:   &fakeProjectService{},
		deptSvc:      &fakeDepartmentService{},
	}
	f.router = NewRouter(
		RouterConfig{Env: "test", CORSOrigins: []string{"*"}},
		f.tokenService,
		NewAuthHandler(f.authSvc),
		NewEmployeeHandler(f.employeeSvc),
		NewProjectHandler(f.projectSvc),
		NewDepartmentHandler(f.deptSvc),
		NewReportHandler(&fakeReportService{}),
	)
	return f
}

func (f *routerFixture) bearer(t *testing.T, permissions user.PermissionSet) string {
	t.Helper()
	tokenString, _, err := f.tokenService.GenerateAccessToken("user-1", "tester", permissions)
	require.NoError(t, err)
	return "Bearer " + tokenString
}

func (f *routerFixture) do(t *testing.T, method, path, authorization string, body interface{}) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var envelope response.Response
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	}
	return rec, envelope
}

func TestRouter_LoginSuccess(t *testing.T) {
	f := newRouterFixture()
	f.authSvc.resp = auth.LoginResponse{
		Token:     "issued-token",
		ExpiresAt: 1234567890,
		User:      auth.UserResponse{Username: "manager", Permissions: []string{"read", "write"}},
	}

	rec, envelope := f.do(t, http.MethodPost, "/api/v1/auth/login", "",
		auth.LoginRequest{Username: "manager", Password: "manager123"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Success)
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "issued-token", data["token"])
}

func TestRouter_LoginInvalidCredentials(t *testing.T) {
	f := newRouterFixture()
	f.authSvc.err = auth.ErrInvalidCredentials

	rec, envelope := f.do(t, http.MethodPost, "/api/v1/auth/login", "",
		auth.LoginRequest{Username: "manager", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", envelope.Error.Code)
}

func TestRouter_MissingToken(t *testing.T) {
	f := newRouterFixture()

	rec, envelope := f.do(t, http.MethodGet, "/api/v1/employees", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "UNAUTHENTICATED", envelope.Error.Code)
}

func TestRouter_MalformedToken(t *testing.T) {
	f := newRouterFixture()

	rec, envelope := f.do(t, http.MethodGet, "/api/v1/employees", "Bearer not-a-token", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "INVALID_CREDENTIAL", envelope.Error.Code)
}

func TestRouter_ReadTokenAllowsList(t *testing.T) {
	f := newRouterFixture()

	rec, envelope := f.do(t, http.MethodGet, "/api/v1/employees",
		f.bearer(t, user.PermissionSet{user.PermissionRead}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Success)
}

func TestRouter_ReadTokenForbiddenOnWrite(t *testing.T) {
	f := newRouterFixture()

	rec, envelope := f.do(t, http.MethodPost, "/api/v1/employees",
		f.bearer(t, user.PermissionSet{user.PermissionRead}),
		employee.CreateEmployeeRequest{Name: "Ivan Petrov"})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "FORBIDDEN", envelope.Error.Code)
}

func TestRouter_WriteTokenForbiddenOnDelete(t *testing.T) {
	f := newRouterFixture()

	rec, _ := f.do(t, http.MethodDelete, "/api/v1/employees/emp-1",
		f.bearer(t, user.PermissionSet{user.PermissionRead, user.PermissionWrite}), nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_AdminTokenGrantsEverything(t *testing.T) {
	f := newRouterFixture()
	admin := f.bearer(t, user.PermissionSet{user.PermissionAdmin})

	rec, _ := f.do(t, http.MethodGet, "/api/v1/employees", admin, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = f.do(t, http.MethodDelete, "/api/v1/employees/emp-1", admin, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_DeleteBlockedByIntegrityGuard(t *testing.T) {
	f := newRouterFixture()
	f.employeeSvc.deleteErr = &employee.ReferencedByActiveProjectsError{
		EmployeeName:   "Ivan Petrov",
		ActiveProjects: []string{"P1"},
	}

	rec, envelope := f.do(t, http.MethodDelete, "/api/v1/employees/emp-1",
		f.bearer(t, user.PermissionSet{user.PermissionAdmin}), nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "REFERENCED_BY_ACTIVE_PROJECTS", envelope.Error.Code)
	assert.Equal(t, float64(1), envelope.Error.Details["active_projects_count"])
	assert.Equal(t, []interface{}{"P1"}, envelope.Error.Details["active_projects"])
}

func TestRouter_ProjectDeleteNotTerminal(t *testing.T) {
	f := newRouterFixture()
	f.projectSvc.deleteErr = &project.NotTerminalError{
		ProjectName: "Website Redesign",
		Status:      project.StatusInProgress,
	}

	rec, envelope := f.do(t, http.MethodDelete, "/api/v1/projects/proj-1",
		f.bearer(t, user.PermissionSet{user.PermissionAdmin}), nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "PROJECT_NOT_TERMINAL", envelope.Error.Code)
	assert.Equal(t, "InProgress", envelope.Error.Details["current_status"])
}

func TestRouter_DepartmentDeleteHasEmployees(t *testing.T) {
	f := newRouterFixture()
	f.deptSvc.deleteErr = &department.HasEmployeesError{
		DepartmentName: "IT",
		EmployeeCount:  5,
	}

	rec, envelope := f.do(t, http.MethodDelete, "/api/v1/departments/dep-1",
		f.bearer(t, user.PermissionSet{user.PermissionAdmin}), nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "DEPARTMENT_HAS_EMPLOYEES", envelope.Error.Code)
	assert.Equal(t, float64(5), envelope.Error.Details["employees_count"])
}

func TestRouter_CreateValidationError(t *testing.T) {
	f := newRouterFixture()
	f.employeeSvc.createErr = validator.ValidationErrors{
		{Field: "email", Message: "a valid email is required"},
	}

	rec, envelope := f.do(t, http.MethodPost, "/api/v1/employees",
		f.bearer(t, user.PermissionSet{user.PermissionWrite}),
		employee.CreateEmployeeRequest{Name: "Ivan Petrov"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Equal(t, "a valid email is required", envelope.Error.Details["email"])
}

func TestRouter_SearchPassesFilters(t *testing.T) {
	f := newRouterFixture()

	rec, _ := f.do(t, http.MethodGet, "/api/v1/search/employees?name=Ivan&department=IT&position=Developer",
		f.bearer(t, user.PermissionSet{user.PermissionRead}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, employee.SearchFilter{
		Name:       "Ivan",
		Department: "IT",
		Position:   "Developer",
	}, f.employeeSvc.lastFilter)
}

func TestRouter_ReportsRequireRead(t *testing.T) {
	f := newRouterFixture()

	rec, _ := f.do(t, http.MethodGet, "/api/v1/reports/salary-statistics",
		f.bearer(t, user.PermissionSet{user.PermissionRead}), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/api/v1/reports/salary-statistics", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
