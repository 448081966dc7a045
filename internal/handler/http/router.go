package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Auth       AuthHandler
	User       UserHandler
	Employee   EmployeeHandler
	Schedule   ScheduleHandler
	Holiday    HolidayHandler
	Leave      LeaveHandler
	Attendance AttendanceHandler
	Dashboard  DashboardHandler
	Report     ReportHandler
}

type RouterOptions struct {
	AllowedOrigins []string
	LogLevel       slog.Level
}

func NewRouter(logger *slog.Logger, opts RouterOptions, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	permit := middleware.RequirePermission

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chiMiddleware.AllowContentType("application/json"))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/auth/logout", h.Auth.Logout)

			r.Route("/attendance", func(r chi.Router) {
				r.With(permit(user.PermissionAttendanceView)).Get("/daily", h.Attendance.ListDailyStatuses)

				r.Route("/employees/{employeeID}", func(r chi.Router) {
					r.With(permit(user.PermissionAttendanceView)).Get("/days/{date}", h.Attendance.GetDay)
					r.With(permit(user.PermissionAttendanceView)).Get("/months/{month}", h.Attendance.GetMonth)
					r.With(permit(user.PermissionAttendanceManage)).Put("/days/{date}", h.Attendance.UpsertRecord)
					r.With(permit(user.PermissionAttendanceManage)).Post("/days/{date}/exits", h.Attendance.CreateTemporaryExit)
				})

				r.Route("/exits/{id}", func(r chi.Router) {
					r.Use(permit(user.PermissionAttendanceManage))
					r.Patch("/return", h.Attendance.CloseTemporaryExit)
					r.Delete("/", h.Attendance.DeleteTemporaryExit)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(permit(user.PermissionScheduleView))
					r.Get("/", h.Schedule.ListWorkSchedules)
					r.Get("/{id}", h.Schedule.GetWorkSchedule)
					r.Get("/employees/{employeeID}/assignments", h.Schedule.ListEmployeeAssignments)
					r.Get("/employees/{employeeID}/active", h.Schedule.GetActiveSchedule)
				})

				r.Group(func(r chi.Router) {
					r.Use(permit(user.PermissionScheduleManage))
					r.Post("/", h.Schedule.CreateWorkSchedule)
					r.Put("/{id}", h.Schedule.UpdateWorkSchedule)
					r.Delete("/{id}", h.Schedule.DeleteWorkSchedule)
					r.Post("/assignments", h.Schedule.AssignSchedule)
					r.Delete("/assignments/{id}", h.Schedule.DeleteAssignment)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.With(permit(user.PermissionHolidayView)).Get("/", h.Holiday.ListHolidays)
				r.Group(func(r chi.Router) {
					r.Use(permit(user.PermissionHolidayManage))
					r.Post("/", h.Holiday.CreateHoliday)
					r.Put("/{id}", h.Holiday.UpdateHoliday)
					r.Delete("/{id}", h.Holiday.DeleteHoliday)
				})
			})

			r.Route("/absences", func(r chi.Router) {
				r.With(permit(user.PermissionLeaveView)).Get("/", h.Leave.ListAbsences)
				r.Group(func(r chi.Router) {
					r.Use(permit(user.PermissionLeaveManage))
					r.Post("/", h.Leave.CreateAbsence)
					r.Delete("/{id}", h.Leave.DeleteAbsence)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.With(permit(user.PermissionEmployeeView)).Get("/", h.Employee.ListEmployees)
				r.With(permit(user.PermissionEmployeeView)).Get("/{id}", h.Employee.GetEmployee)
				r.Group(func(r chi.Router) {
					r.Use(permit(user.PermissionEmployeeManage))
					r.Post("/", h.Employee.CreateEmployee)
					r.Put("/{id}", h.Employee.UpdateEmployee)
					r.Delete("/{id}", h.Employee.DeleteEmployee)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Use(permit(user.PermissionUserManage))
				r.Get("/", h.User.ListUsers)
				r.Post("/", h.User.CreateUser)
				r.Put("/{id}", h.User.UpdateUser)
				r.Delete("/{id}", h.User.DeleteUser)
			})

			r.Group(func(r chi.Router) {
				r.Use(permit(user.PermissionReportsView))
				r.Get("/dashboard/daily", h.Dashboard.GetDailyStats)
				r.Get("/dashboard/monthly", h.Dashboard.GetMonthlyStats)
				r.Get("/reports/employees/{employeeID}/months/{month}.pdf", h.Report.MonthlyAttendancePDF)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	return r
}
