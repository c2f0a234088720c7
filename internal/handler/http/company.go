package http

import (
	"net/http"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/specialday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/summary"
	"github.com/cmlabs-hris/worktime-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/worktime-backend-go/internal/handler/http/response"
)

// CompanyHandler serves company-scoped reads. Routes are mounted behind middleware.RequireCompany.
type CompanyHandler interface {
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	ListSpecialDayTypes(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	monthlyService    summary.MonthlyService
	specialDayService specialday.SpecialDayService
	settingsService   settings.SettingsService
}

// MonthlySummary implements CompanyHandler.
func (h *CompanyHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	q := summary.MonthlySummaryQuery{
		CompanyID:  middleware.CompanyID(r.Context()),
		Month:      r.URL.Query().Get("month"),
		EmployeeID: optionalQuery(r, "employee_id"),
	}

	result, err := h.monthlyService.Get(r.Context(), q)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListSpecialDayTypes implements CompanyHandler.
func (h *CompanyHandlerImpl) ListSpecialDayTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.specialDayService.ListTypes(r.Context(), middleware.CompanyID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results := make([]specialday.SpecialDayTypeResponse, 0, len(types))
	for _, t := range types {
		results = append(results, specialday.NewSpecialDayTypeResponse(t))
	}
	response.List(w, results, len(results))
}

// GetSettings implements CompanyHandler.
func (h *CompanyHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	cs, err := h.settingsService.Get(r.Context(), middleware.CompanyID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings.NewSettingsResponse(cs))
}

func NewCompanyHandler(
	monthlyService summary.MonthlyService,
	specialDayService specialday.SpecialDayService,
	settingsService settings.SettingsService,
) CompanyHandler {
	return &CompanyHandlerImpl{
		monthlyService:    monthlyService,
		specialDayService: specialDayService,
		settingsService:   settingsService,
	}
}
