package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// compressionLevel is the gzip level used for responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withMetrics)
	router.Use(middleware.Compress(compressionLevel))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withSession)

	router.Get("/health", h.health)
	router.Get("/version", h.getServerVersion)
	router.Handle("/metrics", promhttp.Handler())

	// identity
	router.Post("/register", h.register)
	router.Post("/login", h.login)
	router.Post("/consent", h.consent)

	// assessments
	router.Post("/api/assessment", h.saveAssessment)
	router.Get("/api/user/{id}/history", h.history)

	// behavioral model and fusion
	router.Post("/predict", h.predict)
	router.Post("/predict_fused", h.predictFused)

	// conversational responder
	router.Post("/chat", h.chat)
	router.Post("/llm_chat", h.llmChat)

	// admin routes
	router.Group(func(r chi.Router) {
		r.Use(h.adminOnly)
		r.With(h.signResponse).Get("/admin/export", h.exportCSV)
		r.Delete("/api/delete_user/{id}", h.deleteUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
