package http

import (
	"net/http"
	"time"

	"campreserv-backend/internal/domain"
	"campreserv-backend/internal/service"

	"github.com/gorilla/mux"
)

// WaitlistHandler exposes waitlist entry management endpoints
type WaitlistHandler struct {
	waitlistSvc service.WaitlistService
}

func NewWaitlistHandler(waitlistSvc service.WaitlistService) *WaitlistHandler {
	return &WaitlistHandler{waitlistSvc: waitlistSvc}
}

type createWaitlistRequest struct {
	GuestID       *string `json:"guest_id"`
	Priority      *int    `json:"priority"`
	ArrivalDate   *string `json:"arrival_date"`
	DepartureDate *string `json:"departure_date"`
	SiteID        *string `json:"site_id"`
	SiteClassID   *string `json:"site_class_id"`
	MaxPriceCents *int64  `json:"max_price_cents"`
	AutoOffer     bool    `json:"auto_offer"`
	Notes         string  `json:"notes"`
}

type createStaffWaitlistRequest struct {
	Type          string  `json:"type"`
	ContactName   string  `json:"contact_name"`
	ContactEmail  string  `json:"contact_email"`
	ContactPhone  string  `json:"contact_phone"`
	Notes         string  `json:"notes"`
	SiteID        *string `json:"site_id"`
	SiteClassID   *string `json:"site_class_id"`
	ArrivalDate   *string `json:"arrival_date"`
	DepartureDate *string `json:"departure_date"`
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *WaitlistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createWaitlistRequest
	if !decodeBody(w, r, &req) {
		return
	}
	arrival, err := parseDate(req.ArrivalDate)
	if err != nil {
		respondBadRequest(w, "invalid arrival_date, expected YYYY-MM-DD")
		return
	}
	departure, err := parseDate(req.DepartureDate)
	if err != nil {
		respondBadRequest(w, "invalid departure_date, expected YYYY-MM-DD")
		return
	}
	if req.Priority != nil && (*req.Priority < 0 || *req.Priority > 100) {
		respondBadRequest(w, "priority must be between 0 and 100")
		return
	}

	entry, err := h.waitlistSvc.Create(r.Context(), service.CreateWaitlistEntryInput{
		CampgroundID:  actorFrom(r).CampgroundID,
		GuestID:       req.GuestID,
		Priority:      req.Priority,
		ArrivalDate:   arrival,
		DepartureDate: departure,
		SiteID:        req.SiteID,
		SiteClassID:   req.SiteClassID,
		MaxPriceCents: req.MaxPriceCents,
		AutoOffer:     req.AutoOffer,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

func (h *WaitlistHandler) CreateStaffEntry(w http.ResponseWriter, r *http.Request) {
	var req createStaffWaitlistRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ContactName == "" {
		respondBadRequest(w, "contact_name is required")
		return
	}
	arrival, err := parseDate(req.ArrivalDate)
	if err != nil {
		respondBadRequest(w, "invalid arrival_date, expected YYYY-MM-DD")
		return
	}
	departure, err := parseDate(req.DepartureDate)
	if err != nil {
		respondBadRequest(w, "invalid departure_date, expected YYYY-MM-DD")
		return
	}

	entry, err := h.waitlistSvc.CreateStaffEntry(r.Context(), service.CreateStaffWaitlistEntryInput{
		CampgroundID:  actorFrom(r).CampgroundID,
		Type:          domain.WaitlistType(req.Type),
		ContactName:   req.ContactName,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
		Notes:         req.Notes,
		SiteID:        req.SiteID,
		SiteClassID:   req.SiteClassID,
		ArrivalDate:   arrival,
		DepartureDate: departure,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

func (h *WaitlistHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	entries, err := h.waitlistSvc.FindAll(r.Context(), actorFrom(r).CampgroundID, r.URL.Query().Get("type"))
	if err != nil {
		respondError(w, err)
		return
	}
	if entries == nil {
		entries = []domain.WaitlistEntry{}
	}
	respondJSON(w, http.StatusOK, entries)
}

func (h *WaitlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.waitlistSvc.Remove(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *WaitlistHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.waitlistSvc.GetStats(r.Context(), actorFrom(r).CampgroundID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// RegisterWaitlistRoutes mounts the waitlist endpoints
func RegisterWaitlistRoutes(router *mux.Router, handler *WaitlistHandler) {
	router.HandleFunc("/waitlist", handler.Create).Methods("POST")
	router.HandleFunc("/waitlist/staff", handler.CreateStaffEntry).Methods("POST")
	router.HandleFunc("/waitlist", handler.FindAll).Methods("GET")
	router.HandleFunc("/waitlist/stats", handler.GetStats).Methods("GET")
	router.HandleFunc("/waitlist/{id}", handler.Remove).Methods("DELETE")
}
