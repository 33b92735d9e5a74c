package http

import (
	"net/http"
	"strconv"

	"campreserv-backend/internal/domain"
	"campreserv-backend/internal/service"

	"github.com/gorilla/mux"
)

// NotificationHandler exposes the in-app notification feed for staff users
type NotificationHandler struct {
	noteSvc service.NotificationService
}

func NewNotificationHandler(noteSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{noteSvc: noteSvc}
}

type notificationListResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	Total         int                   `json:"total"`
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	notes, total, err := h.noteSvc.GetNotifications(r.Context(), actorFrom(r).ID, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	if notes == nil {
		notes = []domain.Notification{}
	}
	respondJSON(w, http.StatusOK, notificationListResponse{Notifications: notes, Total: total})
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	if err := h.noteSvc.MarkAsRead(r.Context(), actorFrom(r).ID, mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// RegisterNotificationRoutes mounts the notification endpoints
func RegisterNotificationRoutes(router *mux.Router, handler *NotificationHandler) {
	router.HandleFunc("/notifications", handler.List).Methods("GET")
	router.HandleFunc("/notifications/{id}/read", handler.MarkAsRead).Methods("POST")
}
