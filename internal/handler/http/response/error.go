package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/listview"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-frontend-go/internal/repository/restapi"
)

// StatusCode maps an error to the HTTP status shown to the client.
func StatusCode(err error) int {
	var validationErrs validator.ValidationErrors
	var transportErr *restapi.TransportError

	switch {
	case errors.As(err, &validationErrs):
		return http.StatusUnprocessableEntity
	case errors.Is(err, listview.ErrNotConfirmed),
		errors.Is(err, listview.ErrMissingIdentity),
		errors.Is(err, listview.ErrDialogClosed):
		return http.StatusBadRequest
	case errors.Is(err, listview.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, listview.ErrMutationInFlight),
		errors.Is(err, listview.ErrViewClosed):
		return http.StatusConflict
	case errors.As(err, &transportErr),
		errors.Is(err, listview.ErrFetchFailed),
		errors.Is(err, listview.ErrMutationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Message is the user-facing text for err. Upstream details stay in the
// logs.
func Message(err error) string {
	switch StatusCode(err) {
	case http.StatusBadGateway:
		return "The HR service could not be reached"
	case http.StatusInternalServerError:
		return "An unexpected error occurred"
	default:
		return err.Error()
	}
}

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch code := StatusCode(err); code {
	case http.StatusBadRequest:
		BadRequest(w, Message(err), nil)
	case http.StatusNotFound:
		NotFound(w, Message(err))
	case http.StatusConflict:
		Conflict(w, Message(err))
	case http.StatusBadGateway:
		BadGateway(w, Message(err))
	default:
		InternalServerError(w, Message(err))
	}
}
