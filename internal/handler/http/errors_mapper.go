package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/app"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/internal/validators"
	"github.com/MKhiriev/go-shop-api/models"
)

// errorStatusMap is checked in slice order, so more specific errors must
// come first.
var errorStatusMap = []struct {
	target error
	status int
}{
	{service.ErrValidation, http.StatusBadRequest},
	{ErrInvalidBody, http.StatusBadRequest},
	{ErrMissingJSON, http.StatusBadRequest},
	{store.ErrConstraintViolation, http.StatusBadRequest},

	{service.ErrBadCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},

	{ErrBodyTooLarge, http.StatusRequestEntityTooLarge},

	{store.ErrNotFound, http.StatusNotFound},
	{ErrInvalidID, http.StatusNotFound},

	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage picks the client-facing text for err. notFound is the
// resource-specific text used for 404 answers.
func errorMessage(err error, status int, notFound string) string {
	var validationErr *validators.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case status == http.StatusNotFound && notFound != "":
		return notFound
	case errors.Is(err, service.ErrBadCredentials):
		return app.MsgBadCredentials
	case errors.Is(err, ErrInvalidBody):
		return ErrInvalidBody.Error()
	case errors.Is(err, ErrMissingJSON):
		return ErrMissingJSON.Error()
	case errors.Is(err, store.ErrConstraintViolation):
		return store.ErrConstraintViolation.Error()
	case status == http.StatusUnauthorized:
		return unauthorizedMessage(err)
	default:
		return http.StatusText(status)
	}
}

func unauthorizedMessage(err error) string {
	for _, target := range []error{ErrEmptyAuthorizationHeader, ErrInvalidAuthorizationHeader, service.ErrTokenIsExpiredOrInvalid} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(http.StatusUnauthorized)
}

// writeError translates err into the {"message", "status_code"} body.
// Server-side failures are logged with the request logger.
func writeError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	_, _ = utils.WriteJSON(w, models.ErrorResponse{
		Message:    errorMessage(err, status, notFound),
		StatusCode: status,
	}, status)
}
