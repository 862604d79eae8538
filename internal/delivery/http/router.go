package http //nolint:revive // directory-based package name, imported with alias

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Xausdorf/mem-ledger/internal/domain/repository"
)

const requestTimeout = 30 * time.Second

func NewRouter(h *Handler, idempotency repository.IdempotencyRepository, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/health", h.HandleHealth)

	idempotent := Idempotent(idempotency, logger)

	r.Route("/account", func(r chi.Router) {
		r.With(idempotent).Post("/create", h.HandleCreateAccounts)
		r.Get("/all", h.HandleListAccounts)
		r.Post("/get", h.HandleGetAccounts)
	})

	r.Route("/transaction", func(r chi.Router) {
		r.With(idempotent).Post("/new", h.HandleSubmitTransactions)
		r.Post("/get", h.HandleTransactionStatus)
		r.Get("/{id}", h.HandleGetTransaction)
	})

	return r
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.InfoContext(r.Context(), "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
