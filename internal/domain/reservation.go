package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCheckedIn ReservationStatus = "checked_in"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID            string            `json:"id"`
	CampgroundID  string            `json:"campground_id"`
	GuestID       string            `json:"guest_id"`
	SiteID        string            `json:"site_id"`
	SiteClassID   *string           `json:"site_class_id,omitempty"`
	ArrivalDate   time.Time         `json:"arrival_date"`
	DepartureDate time.Time         `json:"departure_date"`
	TotalCents    int64             `json:"total_cents"`
	Currency      string            `json:"currency"`
	Status        ReservationStatus `json:"status"`
	CancelledAt   *time.Time        `json:"cancelled_at,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
