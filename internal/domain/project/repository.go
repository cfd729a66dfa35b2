package project

import "context"

type ProjectRepository interface {
	List(ctx context.Context) ([]Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	Create(ctx context.Context, newProject Project) (Project, error)
	Update(ctx context.Context, id string, req UpdateProjectRequest) (Project, error)
	Delete(ctx context.Context, id string) error
	// FindActiveByMember returns projects in a non-terminal status
	// where the named employee is manager or a team member.
	FindActiveByMember(ctx context.Context, employeeName string) ([]Project, error)
	CountByDepartment(ctx context.Context, department string) (int64, error)
}
