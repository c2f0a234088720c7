package http

import (
	"net/http"

	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// idParam returns the {id} path parameter, or a validation error when it is not a UUID.
func idParam(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		var errs validator.ValidationErrors
		errs.Add("id", "id must be a valid UUID")
		return "", errs
	}
	return id, nil
}

// optionalQuery returns nil for an absent or blank query parameter.
func optionalQuery(r *http.Request, key string) *string {
	v := r.URL.Query().Get(key)
	if validator.IsEmpty(v) {
		return nil
	}
	return &v
}
