package domain

import "time"

// Guest is a camper with a history at a campground. ReservationCount feeds
// the waitlist loyalty bonus.
type Guest struct {
	ID               string    `json:"id"`
	CampgroundID     string    `json:"campground_id"`
	Name             string    `json:"name"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	ReservationCount int       `json:"reservation_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
