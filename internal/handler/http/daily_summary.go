package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/summary"
	"github.com/cmlabs-hris/worktime-backend-go/internal/handler/http/response"
)

type DailySummaryHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Recalculate(w http.ResponseWriter, r *http.Request)
	ToggleSpecialDay(w http.ResponseWriter, r *http.Request)
}

type DailySummaryHandlerImpl struct {
	dailyService summary.DailyService
}

// Get implements DailySummaryHandler.
func (h *DailySummaryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	req := summary.GetDailySummaryRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Date:       r.URL.Query().Get("date"),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	ds, err := h.dailyService.Get(r.Context(), req.EmployeeID, req.SummaryDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary.NewDailySummaryResponse(ds))
}

// Recalculate implements DailySummaryHandler.
func (h *DailySummaryHandlerImpl) Recalculate(w http.ResponseWriter, r *http.Request) {
	var req summary.RecalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecalculateDailySummary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	ds, err := h.dailyService.Recalculate(r.Context(), req.EmployeeID, req.SummaryDate, req.Hint())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily summary recalculated successfully", summary.NewDailySummaryResponse(ds))
}

// ToggleSpecialDay implements DailySummaryHandler.
func (h *DailySummaryHandlerImpl) ToggleSpecialDay(w http.ResponseWriter, r *http.Request) {
	var req summary.ToggleSpecialDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ToggleSpecialDay decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	ds, err := h.dailyService.ToggleSpecialDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Special day applied successfully"
	if req.SpecialDayTypeID == nil {
		message = "Special day cleared successfully"
	}
	response.SuccessWithMessage(w, message, summary.NewDailySummaryResponse(ds))
}

func NewDailySummaryHandler(dailyService summary.DailyService) DailySummaryHandler {
	return &DailySummaryHandlerImpl{dailyService: dailyService}
}
