package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// contextGetLogger returns the application logger tagged with the request id
// assigned by middleware.RequestID.
func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	if reqID == "" {
		return app.logger
	}

	return app.logger.With("request_id", reqID)
}
