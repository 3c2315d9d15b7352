package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/footy-tipping/internal/logger"
	"github.com/MKhiriev/footy-tipping/internal/service"
	"github.com/MKhiriev/footy-tipping/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrUsernameTaken:       http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusBadRequest,
	ErrInvalidUserID:               http.StatusBadRequest,

	ErrUnauthorized: http.StatusUnauthorized,

	service.ErrUserNotFound: http.StatusNotFound,
	ErrRouteNotFound:        http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err and {"message": err}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "http.writeError").Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, err.Error(), status)
}
