package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/footy-tipping/internal/app"
	"github.com/MKhiriev/footy-tipping/internal/logger"
	"github.com/MKhiriev/footy-tipping/internal/utils"
)

// withErrorBoundary turns a panicking handler into a 500 response with a
// JSON message body. http.ErrAbortHandler is re-raised so net/http can abort
// the connection as intended.
func (h *Handler) withErrorBoundary(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("func", "*Handler.withErrorBoundary").
				Any("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")
			utils.WriteMessage(w, app.MsgInternalServerError, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
