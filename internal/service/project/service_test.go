package project

import (
	"context"
	"testing"

	"github.com/corpdesk/company-backend-go/internal/domain/employee"
	"github.com/corpdesk/company-backend-go/internal/domain/project"
	"github.com/corpdesk/company-backend-go/internal/pkg/validator"
	"github.com/corpdesk/company-backend-go/internal/service/integrity"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProjectRepo struct {
	project.ProjectRepository
	projects  map[string]project.Project
	created   *project.Project
	deletedID string
}

func (f *fakeProjectRepo) GetByID(ctx context.Context, id string) (project.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return project.Project{}, project.ErrProjectNotFound
	}
	return p, nil
}

func (f *fakeProjectRepo) Create(ctx context.Context, newProject project.Project) (project.Project, error) {
	f.created = &newProject
	newProject.ID = "proj-1"
	return newProject, nil
}

func (f *fakeProjectRepo) Delete(ctx context.Context, id string) error {
	f.deletedID = id
	return nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
}

func newTestService(mock pgxmock.PgxPoolIface, repo *fakeProjectRepo) project.ProjectService {
	return NewProjectService(mock, repo, integrity.NewGuard(&fakeEmployeeRepo{}, repo))
}

func TestProjectCreate_Valid(t *testing.T) {
	repo := &fakeProjectRepo{}
	svc := newTestService(nil, repo)

	end := "2024-09-30"
	created, err := svc.Create(context.Background(), project.CreateProjectRequest{
		Name:       "Website Redesign",
		Status:     project.StatusPlanned,
		Budget:     decimal.NewFromInt(500000),
		Department: "IT",
		Manager:    "Ivan Petrov",
		StartDate:  "2024-01-15",
		EndDate:    &end,
	})
	require.NoError(t, err)
	assert.Equal(t, "proj-1", created.ID)
	require.NotNil(t, created.EndDate)
	assert.Equal(t, "2024-09-30", created.EndDate.Format("2006-01-02"))

	// nil team is normalized so the column never stores NULL
	require.NotNil(t, repo.created)
	assert.Equal(t, []string{}, repo.created.Team)
}

func TestProjectCreate_ValidationErrors(t *testing.T) {
	svc := newTestService(nil, &fakeProjectRepo{})

	_, err := svc.Create(context.Background(), project.CreateProjectRequest{
		Name:      "",
		Status:    project.Status("Done"),
		Budget:    decimal.NewFromInt(-10),
		StartDate: "15-01-2024",
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "status")
	assert.Contains(t, fields, "budget")
	assert.Contains(t, fields, "department")
	assert.Contains(t, fields, "start_date")
}

func TestProjectDelete_TerminalStatusAllowed(t *testing.T) {
	for _, status := range []project.Status{project.StatusCompleted, project.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			repo := &fakeProjectRepo{projects: map[string]project.Project{
				"proj-1": {ID: "proj-1", Name: "Annual Audit", Status: status},
			}}
			svc := newTestService(mock, repo)

			mock.ExpectBegin()
			mock.ExpectCommit()

			err = svc.Delete(context.Background(), "proj-1")
			require.NoError(t, err)
			assert.Equal(t, "proj-1", repo.deletedID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProjectDelete_NonTerminalBlocked(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &fakeProjectRepo{projects: map[string]project.Project{
		"proj-1": {ID: "proj-1", Name: "Website Redesign", Status: project.StatusInProgress},
	}}
	svc := newTestService(mock, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err = svc.Delete(context.Background(), "proj-1")

	var termErr *project.NotTerminalError
	require.ErrorAs(t, err, &termErr)
	assert.Equal(t, project.StatusInProgress, termErr.Status)
	assert.Empty(t, repo.deletedID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectDelete_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &fakeProjectRepo{}
	svc := newTestService(mock, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err = svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
