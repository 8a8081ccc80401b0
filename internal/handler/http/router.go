package http

import (
	"log/slog"
	"os"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/config"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/handler/http/middleware"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Agent      AgentHandler
	Sale       SaleHandler
	Fine       FineHandler
	Bonus      BonusHandler
	Attendance AttendanceHandler
	HR         HRHandler
	Payroll    PayrollHandler
	Import     ImportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "agentpay"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/login/agent", h.Auth.AgentLogin)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/agents", func(r chi.Router) {
				r.Get("/", h.Agent.List)
				r.Get("/{cnic}", h.Agent.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Agent.Create)
					r.Put("/{cnic}", h.Agent.Update)
					r.Post("/{cnic}/leave", h.Agent.MarkLeft)
					r.Post("/{cnic}/reactivate", h.Agent.Reactivate)
					r.Delete("/{cnic}", h.Agent.Delete)
				})
			})

			r.Route("/sales", func(r chi.Router) {
				r.Get("/", h.Sale.List)
				r.Get("/{id}", h.Sale.Get)
				r.Post("/", h.Sale.Create)

				// QA edits: grading, feedback, dock notes
				r.Group(func(r chi.Router) {
					r.Use(middleware.EvaluatorOnly)
					r.Put("/{id}", h.Sale.Update)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", h.Sale.Delete)
				})
			})

			r.Route("/fines", func(r chi.Router) {
				r.Get("/", h.Fine.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Fine.Create)
					r.Delete("/{id}", h.Fine.Delete)
				})
			})

			r.Route("/bonuses", func(r chi.Router) {
				r.Get("/", h.Bonus.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Bonus.Create)
					r.Delete("/{id}", h.Bonus.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Get("/matrix", h.Attendance.Matrix)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/import", h.Attendance.Import)
				})
			})

			r.Route("/hr", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.HR.List)
				r.Get("/{cnic}", h.HR.GetByAgent)
				r.Post("/", h.HR.Create)
				r.Put("/{id}", h.HR.Update)
				r.Delete("/{id}", h.HR.Delete)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/dashboard", h.Payroll.Dashboard)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/stats", h.Payroll.AgentStats)
					r.Get("/report", h.Payroll.Report)
				})
			})

			r.Route("/imports", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/agents", h.Import.ImportAgents)
				r.Post("/sales", h.Import.ImportSales)
			})
		})
	})
	return r
}
