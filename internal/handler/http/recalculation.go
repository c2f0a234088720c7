package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/summary"
	"github.com/cmlabs-hris/worktime-backend-go/internal/handler/http/response"
)

type RecalculationHandler interface {
	Run(w http.ResponseWriter, r *http.Request)
}

type RecalculationHandlerImpl struct {
	sweepService summary.SweepService
}

// Run implements RecalculationHandler.
func (h *RecalculationHandlerImpl) Run(w http.ResponseWriter, r *http.Request) {
	var req summary.SweepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Recalculation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.sweepService.Sweep(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Recalculation completed", result)
}

func NewRecalculationHandler(sweepService summary.SweepService) RecalculationHandler {
	return &RecalculationHandlerImpl{sweepService: sweepService}
}
