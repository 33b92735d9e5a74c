package http

import (
	"context"
	"net/http"

	"campreserv-backend/internal/domain"
	"campreserv-backend/internal/service"

	"github.com/gorilla/mux"
)

// TillHandler exposes till session lifecycle endpoints
type TillHandler struct {
	tillSvc service.TillService
}

func NewTillHandler(tillSvc service.TillService) *TillHandler {
	return &TillHandler{tillSvc: tillSvc}
}

type openTillRequest struct {
	TerminalID        *string `json:"terminal_id"`
	OpeningFloatCents int64   `json:"opening_float_cents"`
	Currency          string  `json:"currency"`
	Notes             string  `json:"notes"`
}

type closeTillRequest struct {
	CountedCloseCents int64  `json:"counted_close_cents"`
	Notes             string `json:"notes"`
}

type tillMovementRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Note        string `json:"note"`
}

type tillSessionDetail struct {
	domain.TillSession
	ComputedExpectedCloseCents int64 `json:"computed_expected_close_cents"`
}

func (h *TillHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req openTillRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.OpeningFloatCents < 0 {
		respondBadRequest(w, "opening float must not be negative")
		return
	}
	if req.Currency == "" {
		respondBadRequest(w, "currency is required")
		return
	}

	session, err := h.tillSvc.Open(r.Context(), service.OpenTillInput{
		TerminalID:        req.TerminalID,
		OpeningFloatCents: req.OpeningFloatCents,
		Currency:          req.Currency,
		Notes:             req.Notes,
	}, actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, session)
}

func (h *TillHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, expected, err := h.tillSvc.Get(r.Context(), mux.Vars(r)["id"], actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tillSessionDetail{TillSession: *session, ComputedExpectedCloseCents: expected})
}

func (h *TillHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.TillSessionStatus(r.URL.Query().Get("status"))
	sessions, err := h.tillSvc.List(r.Context(), status, actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	if sessions == nil {
		sessions = []domain.TillSession{}
	}
	respondJSON(w, http.StatusOK, sessions)
}

func (h *TillHandler) Close(w http.ResponseWriter, r *http.Request) {
	var req closeTillRequest
	if !decodeBody(w, r, &req) {
		return
	}
	session, err := h.tillSvc.Close(r.Context(), mux.Vars(r)["id"], service.CloseTillInput{
		CountedCloseCents: req.CountedCloseCents,
		Notes:             req.Notes,
	}, actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, session)
}

func (h *TillHandler) PaidIn(w http.ResponseWriter, r *http.Request) {
	h.recordMovement(w, r, h.tillSvc.PaidIn)
}

func (h *TillHandler) PaidOut(w http.ResponseWriter, r *http.Request) {
	h.recordMovement(w, r, h.tillSvc.PaidOut)
}

type movementFunc func(ctx context.Context, id string, input service.TillMovementInput, actor service.Actor) (*domain.TillMovement, error)

func (h *TillHandler) recordMovement(w http.ResponseWriter, r *http.Request, record movementFunc) {
	var req tillMovementRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.AmountCents <= 0 {
		respondBadRequest(w, "amount must be positive")
		return
	}
	movement, err := record(r.Context(), mux.Vars(r)["id"], service.TillMovementInput{
		AmountCents: req.AmountCents,
		Note:        req.Note,
	}, actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, movement)
}

// RegisterTillRoutes mounts the till endpoints under /pos/tills
func RegisterTillRoutes(router *mux.Router, handler *TillHandler) {
	router.HandleFunc("/pos/tills/open", handler.Open).Methods("POST")
	router.HandleFunc("/pos/tills", handler.List).Methods("GET")
	router.HandleFunc("/pos/tills/{id}", handler.Get).Methods("GET")
	router.HandleFunc("/pos/tills/{id}/close", handler.Close).Methods("POST")
	router.HandleFunc("/pos/tills/{id}/paid-in", handler.PaidIn).Methods("POST")
	router.HandleFunc("/pos/tills/{id}/paid-out", handler.PaidOut).Methods("POST")
}
