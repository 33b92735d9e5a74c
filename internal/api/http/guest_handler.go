package http

import (
	"net/http"

	"campreserv-backend/internal/domain"
	"campreserv-backend/internal/service"

	"github.com/gorilla/mux"
)

type GuestHandler struct {
	guestSvc service.GuestService
}

func NewGuestHandler(guestSvc service.GuestService) *GuestHandler {
	return &GuestHandler{guestSvc: guestSvc}
}

type createGuestRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (h *GuestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGuestRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		respondBadRequest(w, "name is required")
		return
	}
	guest := &domain.Guest{
		CampgroundID: actorFrom(r).CampgroundID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
	}
	if err := h.guestSvc.Create(r.Context(), guest); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, guest)
}

func (h *GuestHandler) Get(w http.ResponseWriter, r *http.Request) {
	guest, err := h.guestSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, guest)
}

func (h *GuestHandler) List(w http.ResponseWriter, r *http.Request) {
	guests, err := h.guestSvc.List(r.Context(), actorFrom(r).CampgroundID)
	if err != nil {
		respondError(w, err)
		return
	}
	if guests == nil {
		guests = []domain.Guest{}
	}
	respondJSON(w, http.StatusOK, guests)
}

// RegisterGuestRoutes mounts the guest endpoints
func RegisterGuestRoutes(router *mux.Router, handler *GuestHandler) {
	router.HandleFunc("/guests", handler.Create).Methods("POST")
	router.HandleFunc("/guests", handler.List).Methods("GET")
	router.HandleFunc("/guests/{id}", handler.Get).Methods("GET")
}
