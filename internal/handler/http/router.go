package http

import (
	"log/slog"
	"os"

	"github.com/MohamedSalah50/hr-backend-go/internal/config"
	"github.com/MohamedSalah50/hr-backend-go/internal/handler/http/middleware"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth         AuthHandler
	User         UserHandler
	Permission   PermissionHandler
	UserGroup    UserGroupHandler
	Department   DepartmentHandler
	Employee     EmployeeHandler
	Attendance   AttendanceHandler
	Holiday      HolidayHandler
	Setting      SettingHandler
	SalaryReport SalaryReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env == "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Auth.Signup)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh-token", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", h.Auth.Me)
				r.Post("/change-password", h.Auth.ChangePassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/user", func(r chi.Router) {
				r.Get("/", h.User.List)
				r.Post("/change-password", h.Auth.ChangePassword)
				r.Get("/{id}", h.User.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.User.Create)
					r.Patch("/{id}", h.User.Update)
					r.Patch("/{id}/toggle-status", h.User.ToggleStatus)
					r.Delete("/{id}", h.User.Delete)
				})
			})

			r.Route("/permissions", func(r chi.Router) {
				r.Get("/", h.Permission.List)
				r.Get("/{id}", h.Permission.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Permission.Create)
					r.Patch("/{id}", h.Permission.Update)
					r.Patch("/{id}/soft-delete", h.Permission.SoftDelete)
					r.Delete("/{id}", h.Permission.Delete)
				})
			})

			r.Route("/user-groups", func(r chi.Router) {
				r.Get("/", h.UserGroup.List)
				r.Get("/{id}", h.UserGroup.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.UserGroup.Create)
					r.Patch("/{id}", h.UserGroup.Update)
					r.Patch("/{id}/soft-delete", h.UserGroup.Delete)
					r.Post("/{id}/users", h.UserGroup.AddUsers)
					r.Delete("/{id}/users", h.UserGroup.RemoveUsers)
					r.Post("/{id}/permissions", h.UserGroup.AddPermissions)
					r.Delete("/{id}/permissions", h.UserGroup.RemovePermissions)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Department.List)
				r.Get("/{id}", h.Department.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Department.Create)
					r.Patch("/{id}", h.Department.Update)
					r.Patch("/{id}/soft-delete", h.Department.Delete)
				})
			})

			r.Route("/employee", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Employee.Create)
					r.Patch("/{id}", h.Employee.Update)
					r.Patch("/{id}/toggle-status", h.Employee.ToggleStatus)
					r.Patch("/{id}/soft-delete", h.Employee.SoftDelete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Post("/search", h.Attendance.Search)
				r.Get("/statistics/{employeeId}", h.Attendance.Statistics)
				r.Post("/export", h.Attendance.Export)
				r.Get("/{id}", h.Attendance.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Attendance.Create)
					r.Post("/import", h.Attendance.Import)
					r.Patch("/{id}", h.Attendance.Update)
					r.Patch("/{id}/soft-delete", h.Attendance.SoftDelete)
				})
			})

			r.Route("/official-holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.List)
				r.Get("/{id}", h.Holiday.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Holiday.Create)
					r.Patch("/{id}", h.Holiday.Update)
					r.Delete("/{id}", h.Holiday.Delete)
				})
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/overtime-deduction/current", h.Setting.GetOvertimeDeduction)
				r.Get("/weekend/current", h.Setting.GetWeekend)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Put("/overtime-deduction", h.Setting.SaveOvertimeDeduction)
					r.Put("/weekend", h.Setting.SaveWeekend)
					r.Get("/", h.Setting.List)
					r.Post("/", h.Setting.Upsert)
					r.Get("/{key}", h.Setting.Get)
					r.Delete("/{key}", h.Setting.Delete)
				})
			})

			r.Route("/salary-reports", func(r chi.Router) {
				r.Get("/", h.SalaryReport.List)
				r.Post("/search", h.SalaryReport.Search)
				r.Get("/summary", h.SalaryReport.Summary)
				r.Get("/{id}", h.SalaryReport.Get)
				r.Get("/{id}/print", h.SalaryReport.Print)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/generate", h.SalaryReport.Generate)
					r.Post("/generate-all", h.SalaryReport.GenerateAll)
					r.Post("/regenerate", h.SalaryReport.Regenerate)
					r.Delete("/{id}", h.SalaryReport.Delete)
				})
			})
		})
	})

	return r
}
