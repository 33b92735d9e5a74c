package http

import (
	"net/http"

	"campreserv-backend/internal/security"
	"campreserv-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth         *AuthHandler
	Till         *TillHandler
	Waitlist     *WaitlistHandler
	Reservation  *ReservationHandler
	Guest        *GuestHandler
	Notification *NotificationHandler
}

func NewHandlers(
	authSvc service.AuthService,
	tillSvc service.TillService,
	waitlistSvc service.WaitlistService,
	reservationSvc service.ReservationService,
	guestSvc service.GuestService,
	noteSvc service.NotificationService,
) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(authSvc),
		Till:         NewTillHandler(tillSvc),
		Waitlist:     NewWaitlistHandler(waitlistSvc),
		Reservation:  NewReservationHandler(reservationSvc),
		Guest:        NewGuestHandler(guestSvc),
		Notification: NewNotificationHandler(noteSvc),
	}
}

// NewRouter assembles the full route table. Everything except login, health
// and metrics sits behind the bearer-token middleware.
func NewRouter(handlers *Handlers, tokens security.TokenManager) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	RegisterAuthRoutes(router, handlers.Auth)

	authed := router.NewRoute().Subrouter()
	authed.Use(Authenticate(tokens))
	RegisterTillRoutes(authed, handlers.Till)
	RegisterWaitlistRoutes(authed, handlers.Waitlist)
	RegisterReservationRoutes(authed, handlers.Reservation)
	RegisterGuestRoutes(authed, handlers.Guest)
	RegisterNotificationRoutes(authed, handlers.Notification)

	return router
}
