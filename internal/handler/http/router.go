package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/worktime-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/worktime-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

type Handlers struct {
	Session       SessionHandler
	DailySummary  DailySummaryHandler
	Company       CompanyHandler
	Leave         LeaveHandler
	Recalculation RecalculationHandler
}

func NewRouter(opts RouterOptions, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  slog.LevelDebug,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/clock-in", h.Session.ClockIn)
			r.Post("/clock-out", h.Session.ClockOut)
			r.Post("/", h.Session.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Put("/", h.Session.Update)
				r.Delete("/", h.Session.Cancel)
				r.Post("/calculate", h.Session.Calculate)
			})
		})

		r.Route("/daily-summaries", func(r chi.Router) {
			r.Get("/", h.DailySummary.Get)
			r.Post("/recalculate", h.DailySummary.Recalculate)
			r.Put("/special-day", h.DailySummary.ToggleSpecialDay)
		})

		r.Route("/companies/{companyID}", func(r chi.Router) {
			r.Use(middleware.RequireCompany)
			r.Get("/monthly-summary", h.Company.MonthlySummary)
			r.Get("/special-day-types", h.Company.ListSpecialDayTypes)
			r.Get("/settings", h.Company.GetSettings)
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Post("/", h.Leave.Grant)
			r.Delete("/{id}", h.Leave.Cancel)
		})

		r.Post("/recalculations", h.Recalculation.Run)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	return r
}
