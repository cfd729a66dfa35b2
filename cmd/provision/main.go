// Command provision seeds the credential store and, optionally, sample
// entity data. Credential provisioning is deliberately out of band:
// the API itself never creates or deletes users.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/corpdesk/company-backend-go/internal/config"
	"github.com/corpdesk/company-backend-go/internal/domain/department"
	"github.com/corpdesk/company-backend-go/internal/domain/employee"
	"github.com/corpdesk/company-backend-go/internal/domain/project"
	"github.com/corpdesk/company-backend-go/internal/domain/user"
	"github.com/corpdesk/company-backend-go/internal/pkg/database"
	"github.com/corpdesk/company-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	username    string
	password    string
	permissions user.PermissionSet
}

var defaultUsers = []seedUser{
	{"admin", "admin123", user.PermissionSet{user.PermissionAdmin, user.PermissionRead, user.PermissionWrite}},
	{"manager", "manager123", user.PermissionSet{user.PermissionRead, user.PermissionWrite}},
	{"viewer", "viewer123", user.PermissionSet{user.PermissionRead}},
}

func main() {
	var withSampleData bool

	rootCmd := &cobra.Command{
		Use:   "provision",
		Short: "Seed users and optional sample data into the entity store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer db.Close()

			ctx := cmd.Context()
			if err := seedUsers(ctx, db); err != nil {
				return err
			}
			if withSampleData {
				if err := seedSampleData(ctx, db); err != nil {
					return err
				}
			}
			return nil
		},
	}
	rootCmd.Flags().BoolVar(&withSampleData, "with-sample-data", false, "also seed sample departments, employees and projects")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "provision failed:", err)
		os.Exit(1)
	}
}

func seedUsers(ctx context.Context, db *database.DB) error {
	userRepo := postgresql.NewUserRepository(db)

	for _, u := range defaultUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.username, err)
		}
		_, err = userRepo.Create(ctx, user.User{
			Username:     u.username,
			PasswordHash: string(hash),
			Permissions:  u.permissions,
		})
		if err != nil {
			if errors.Is(err, user.ErrUsernameExists) {
				fmt.Printf("user %s already exists, skipping\n", u.username)
				continue
			}
			return fmt.Errorf("create user %s: %w", u.username, err)
		}
		fmt.Printf("created user %s (%v)\n", u.username, u.permissions.Strings())
	}
	return nil
}

func seedSampleData(ctx context.Context, db *database.DB) error {
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)

	departments := []struct {
		Name        string
		Description string
		Location    string
		Budget      string
	}{
		{Name: "IT", Description: "Information technology", Location: "Moscow", Budget: "2000000"},
		{Name: "HR", Description: "Human resources", Location: "Moscow", Budget: "800000"},
		{Name: "Finance", Description: "Finance department", Location: "Saint Petersburg", Budget: "1500000"},
		{Name: "Marketing", Description: "Marketing department", Location: "Moscow", Budget: "1200000"},
	}
	for _, d := range departments {
		_, err := departmentRepo.Create(ctx, department.Department{
			Name:        d.Name,
			Description: d.Description,
			Location:    d.Location,
			Budget:      decimal.RequireFromString(d.Budget),
		})
		if err != nil {
			if errors.Is(err, department.ErrNameExists) {
				continue
			}
			return fmt.Errorf("create department %s: %w", d.Name, err)
		}
	}
	fmt.Println("departments seeded")

	employees := []employee.Employee{
		{Name: "Ivan Petrov", Position: "Senior Developer", Department: "IT", Salary: decimal.NewFromInt(120000), Email: "ivan.petrov@company.test", Phone: "+79160000001", Skills: []string{"Go", "PostgreSQL"}},
		{Name: "Anna Sidorova", Position: "HR Manager", Department: "HR", Salary: decimal.NewFromInt(80000), Email: "anna.sidorova@company.test", Phone: "+79160000002", Skills: []string{"Recruiting"}},
		{Name: "Pavel Smirnov", Position: "Financial Analyst", Department: "Finance", Salary: decimal.NewFromInt(95000), Email: "pavel.smirnov@company.test", Phone: "+79160000003", Skills: []string{"Excel", "Reporting"}},
	}
	for _, e := range employees {
		e.HireDate = mustDate("2022-03-01")
		if _, err := employeeRepo.Create(ctx, e); err != nil {
			if errors.Is(err, employee.ErrEmailExists) {
				continue
			}
			return fmt.Errorf("create employee %s: %w", e.Name, err)
		}
	}
	fmt.Println("employees seeded")

	projects := []project.Project{
		{Name: "Website Redesign", Description: "New corporate website", Status: project.StatusInProgress, Budget: decimal.NewFromInt(500000), Department: "IT", Manager: "Ivan Petrov", Team: []string{"Ivan Petrov"}, StartDate: mustDate("2024-01-15")},
		{Name: "Hiring Campaign", Description: "Q3 hiring push", Status: project.StatusPlanned, Budget: decimal.NewFromInt(150000), Department: "HR", Manager: "Anna Sidorova", Team: []string{"Anna Sidorova"}, StartDate: mustDate("2024-06-01")},
		{Name: "Annual Audit", Description: "Yearly financial audit", Status: project.StatusCompleted, Budget: decimal.NewFromInt(300000), Department: "Finance", Manager: "Pavel Smirnov", Team: []string{"Pavel Smirnov"}, StartDate: mustDate("2023-10-01")},
	}
	for _, p := range projects {
		if _, err := projectRepo.Create(ctx, p); err != nil {
			return fmt.Errorf("create project %s: %w", p.Name, err)
		}
	}
	fmt.Println("projects seeded")

	return nil
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
