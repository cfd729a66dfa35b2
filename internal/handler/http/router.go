package http

import (
	"log/slog"
	"os"

	"github.com/corpdesk/company-backend-go/internal/domain/user"
	"github.com/corpdesk/company-backend-go/internal/handler/http/middleware"
	"github.com/corpdesk/company-backend-go/internal/pkg/token"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Env         string
	LogLevel    string
	CORSOrigins []string
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func NewRouter(
	cfg RouterConfig,
	tokenService token.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	projectHandler ProjectHandler,
	departmentHandler DepartmentHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "company-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel(cfg.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	requireRead := middleware.RequirePermission(user.PermissionRead)
	requireWrite := middleware.RequirePermission(user.PermissionWrite)
	requireAdmin := middleware.RequirePermission(user.PermissionAdmin)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokenService.JWTAuth()))
			r.Use(middleware.AuthRequired(tokenService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.With(requireRead).Get("/", employeeHandler.List)
				r.With(requireRead).Get("/{id}", employeeHandler.GetByID)
				r.With(requireWrite).Post("/", employeeHandler.Create)
				r.With(requireWrite).Put("/{id}", employeeHandler.Update)
				r.With(requireAdmin).Delete("/{id}", employeeHandler.Delete)
			})

			r.Route("/projects", func(r chi.Router) {
				r.With(requireRead).Get("/", projectHandler.List)
				r.With(requireRead).Get("/{id}", projectHandler.GetByID)
				r.With(requireWrite).Post("/", projectHandler.Create)
				r.With(requireWrite).Put("/{id}", projectHandler.Update)
				r.With(requireAdmin).Delete("/{id}", projectHandler.Delete)
			})

			r.Route("/departments", func(r chi.Router) {
				r.With(requireRead).Get("/", departmentHandler.List)
				r.With(requireRead).Get("/{id}", departmentHandler.GetByID)
				r.With(requireWrite).Post("/", departmentHandler.Create)
				r.With(requireWrite).Put("/{id}", departmentHandler.Update)
				r.With(requireAdmin).Delete("/{id}", departmentHandler.Delete)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(requireRead)
				r.Get("/employees-by-department", reportHandler.EmployeesByDepartment)
				r.Get("/projects-by-status", reportHandler.ProjectsByStatus)
				r.Get("/salary-statistics", reportHandler.SalaryStatistics)
			})

			r.With(requireRead).Get("/search/employees", employeeHandler.Search)
		})
	})
	return r
}
