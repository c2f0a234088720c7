package middleware

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/worktime-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type companyIDKey struct{}

// RequireCompany validates the {companyID} path parameter and stores it in the request context.
func RequireCompany(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		companyID := chi.URLParam(r, "companyID")
		if !validator.IsValidUUID(companyID) {
			response.ValidationError(w, map[string]string{"company_id": "company_id must be a valid UUID"})
			return
		}

		ctx := context.WithValue(r.Context(), companyIDKey{}, companyID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CompanyID returns the company id stored by RequireCompany.
func CompanyID(ctx context.Context) string {
	id, _ := ctx.Value(companyIDKey{}).(string)
	return id
}
