package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/session"
	"github.com/cmlabs-hris/worktime-backend-go/internal/handler/http/response"
)

type SessionHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Calculate(w http.ResponseWriter, r *http.Request)
}

type SessionHandlerImpl struct {
	sessionService session.SessionService
}

// sessionResult pairs a session with the calculation that followed its change.
type sessionResult struct {
	Session     session.SessionResponse     `json:"session"`
	Calculation session.CalculationResponse `json:"calculation"`
}

func newSessionResult(ws session.WorkSession, res session.CalculationResult) sessionResult {
	return sessionResult{
		Session:     session.NewSessionResponse(ws),
		Calculation: session.NewCalculationResponse(res),
	}
}

// ClockIn implements SessionHandler.
func (h *SessionHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req session.ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ClockIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	ws, err := h.sessionService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in successfully", session.NewSessionResponse(ws))
}

// ClockOut implements SessionHandler.
func (h *SessionHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req session.ClockOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ClockOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	ws, res, err := h.sessionService.ClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out successfully", newSessionResult(ws, res))
}

// Create implements SessionHandler.
func (h *SessionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req session.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateSession decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	ws, res, err := h.sessionService.CreateManual(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work session created successfully", newSessionResult(ws, res))
}

// Update implements SessionHandler.
func (h *SessionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req session.EditSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("EditSession decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	ws, res, err := h.sessionService.Edit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work session updated successfully", newSessionResult(ws, res))
}

// Cancel implements SessionHandler.
func (h *SessionHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	ws, err := h.sessionService.Cancel(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work session cancelled successfully", session.NewSessionResponse(ws))
}

// Calculate implements SessionHandler.
func (h *SessionHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	res, err := h.sessionService.Calculate(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, session.NewCalculationResponse(res))
}

func NewSessionHandler(sessionService session.SessionService) SessionHandler {
	return &SessionHandlerImpl{sessionService: sessionService}
}
