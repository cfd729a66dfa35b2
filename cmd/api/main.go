package main

import (
	"fmt"
	"net/http"

	"github.com/corpdesk/company-backend-go/internal/config"
	appHTTP "github.com/corpdesk/company-backend-go/internal/handler/http"
	"github.com/corpdesk/company-backend-go/internal/pkg/database"
	"github.com/corpdesk/company-backend-go/internal/pkg/token"
	"github.com/corpdesk/company-backend-go/internal/repository/postgresql"
	authService "github.com/corpdesk/company-backend-go/internal/service/auth"
	departmentService "github.com/corpdesk/company-backend-go/internal/service/department"
	employeeService "github.com/corpdesk/company-backend-go/internal/service/employee"
	"github.com/corpdesk/company-backend-go/internal/service/integrity"
	projectService "github.com/corpdesk/company-backend-go/internal/service/project"
	reportService "github.com/corpdesk/company-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	tokenService := token.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	guard := integrity.NewGuard(employeeRepo, projectRepo)

	authSvc := authService.NewAuthService(userRepo, tokenService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, guard)
	projectSvc := projectService.NewProjectService(db, projectRepo, guard)
	departmentSvc := departmentService.NewDepartmentService(db, departmentRepo, guard)
	reportSvc := reportService.NewReportService(reportRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	projectHandler := appHTTP.NewProjectHandler(projectSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{Env: cfg.App.Env, LogLevel: cfg.App.LogLevel, CORSOrigins: cfg.App.CORSOrigins},
		tokenService,
		authHandler,
		employeeHandler,
		projectHandler,
		departmentHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
