package http

import (
	"net/http"

	"campreserv-backend/internal/service"

	"github.com/gorilla/mux"
)

// ReservationHandler exposes the reservation endpoints that drive the
// waitlist matcher on cancellation.
type ReservationHandler struct {
	reservationSvc service.ReservationService
}

func NewReservationHandler(reservationSvc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationSvc: reservationSvc}
}

type createReservationRequest struct {
	GuestID       string  `json:"guest_id"`
	SiteID        string  `json:"site_id"`
	SiteClassID   *string `json:"site_class_id"`
	ArrivalDate   string  `json:"arrival_date"`
	DepartureDate string  `json:"departure_date"`
	TotalCents    int64   `json:"total_cents"`
	Currency      string  `json:"currency"`
	// Set when the reservation fulfills a waitlist offer.
	WaitlistEntryID *string `json:"waitlist_entry_id"`
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.GuestID == "" || req.SiteID == "" {
		respondBadRequest(w, "guest_id and site_id are required")
		return
	}
	arrival, err := parseDate(&req.ArrivalDate)
	if err != nil || arrival == nil {
		respondBadRequest(w, "invalid arrival_date, expected YYYY-MM-DD")
		return
	}
	departure, err := parseDate(&req.DepartureDate)
	if err != nil || departure == nil {
		respondBadRequest(w, "invalid departure_date, expected YYYY-MM-DD")
		return
	}

	res, err := h.reservationSvc.Create(r.Context(), service.CreateReservationInput{
		GuestID:         req.GuestID,
		SiteID:          req.SiteID,
		SiteClassID:     req.SiteClassID,
		ArrivalDate:     *arrival,
		DepartureDate:   *departure,
		TotalCents:      req.TotalCents,
		Currency:        req.Currency,
		WaitlistEntryID: req.WaitlistEntryID,
	}, actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, res)
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	res, err := h.reservationSvc.Get(r.Context(), mux.Vars(r)["id"], actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	res, err := h.reservationSvc.Cancel(r.Context(), mux.Vars(r)["id"], actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// RegisterReservationRoutes mounts the reservation endpoints
func RegisterReservationRoutes(router *mux.Router, handler *ReservationHandler) {
	router.HandleFunc("/reservations", handler.Create).Methods("POST")
	router.HandleFunc("/reservations/{id}", handler.Get).Methods("GET")
	router.HandleFunc("/reservations/{id}/cancel", handler.Cancel).Methods("POST")
}
