package http

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/Xausdorf/mem-ledger/internal/domain/entity"
	"github.com/Xausdorf/mem-ledger/internal/domain/repository"
)

const (
	idempotencyHeader = "X-Idempotency-Key"
	replayHeader      = "X-Idempotency-Replay"
)

// Idempotent replays the stored reply when a request repeats an
// X-Idempotency-Key on the same method and path. Requests without the
// header pass through. Server errors are not stored so the client can
// retry them.
func Idempotent(repo repository.IdempotencyRepository, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(idempotencyHeader)
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}
			key := r.Method + " " + r.URL.Path + " " + header

			unlock := repo.Lock(key)
			defer unlock()

			if cached := repo.Find(key); cached != nil {
				logger.InfoContext(r.Context(), "idempotent replay", "key", header, "path", r.URL.Path)
				w.Header().Set(replayHeader, "true")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(cached.Status())
				_, _ = w.Write(cached.Body())
				return
			}

			var body bytes.Buffer
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Tee(&body)

			next.ServeHTTP(ww, r)

			if ww.Status() < http.StatusInternalServerError {
				repo.Save(entity.NewIdempotencyRecord(key, ww.Status(), body.Bytes()))
			}
		})
	}
}
