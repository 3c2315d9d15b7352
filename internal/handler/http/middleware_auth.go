package http

import (
	"net/http"

	"github.com/MKhiriev/footy-tipping/internal/logger"
	"github.com/MKhiriev/footy-tipping/internal/utils"
)

// authenticate resolves the caller from the bearer token in the
// "Authorization" header and stores it in the request context.
//
// A missing, malformed, expired or foreign token leaves the request
// anonymous; routes that need a caller are guarded by requireUser. When the
// token is valid but the user cannot be loaded (for example it was deleted
// after the token was issued) the lookup error is answered right away.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		userID, ok := h.services.TokenService.ValidateToken(tokenString)
		if !ok {
			log.Debug().Msg("bearer token rejected, continuing anonymously")
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		user, err := h.services.UserService.GetByID(ctx, userID)
		if err != nil {
			log.Err(err).Str("func", "*Handler.authenticate").Int64("user_id", userID).Msg("error loading token owner")
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithCurrentUser(ctx, user)))
	})
}

// requireUser answers 401 for requests that authenticate left anonymous.
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.CurrentUserFromContext(r.Context()); !ok {
			writeError(w, r, ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
