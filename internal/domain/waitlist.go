package domain

import "time"

type WaitlistStatus string

const (
	WaitlistStatusActive    WaitlistStatus = "active"
	WaitlistStatusOffered   WaitlistStatus = "offered"
	WaitlistStatusConverted WaitlistStatus = "converted"
	WaitlistStatusFulfilled WaitlistStatus = "fulfilled"
	WaitlistStatusExpired   WaitlistStatus = "expired"
	WaitlistStatusCancelled WaitlistStatus = "cancelled"
)

type WaitlistType string

const (
	WaitlistTypeRegular  WaitlistType = "regular"
	WaitlistTypeSeasonal WaitlistType = "seasonal"
)

// WaitlistEntry is a guest's standing request for dates or a site that is
// not currently available. Arrival/departure and site preferences are all
// optional; a fully flexible entry still gets scored on priority, loyalty
// and wait time.
type WaitlistEntry struct {
	ID            string         `json:"id"`
	CampgroundID  string         `json:"campground_id"`
	GuestID       *string        `json:"guest_id,omitempty"`
	Type          WaitlistType   `json:"type"`
	Status        WaitlistStatus `json:"status"`
	Priority      *int           `json:"priority,omitempty"` // 0-100, nil means default 50
	ArrivalDate   *time.Time     `json:"arrival_date,omitempty"`
	DepartureDate *time.Time     `json:"departure_date,omitempty"`
	SiteID        *string        `json:"site_id,omitempty"`
	SiteClassID   *string        `json:"site_class_id,omitempty"`
	MaxPriceCents *int64         `json:"max_price_cents,omitempty"`
	AutoOffer     bool           `json:"auto_offer"`

	// Staff-entered contact fields, used when the entry has no guest record.
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	Notes        string `json:"notes,omitempty"`

	ConvertedReservationID *string    `json:"converted_reservation_id,omitempty"`
	ConvertedAt            *time.Time `json:"converted_at,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`

	Guest *Guest `json:"guest,omitempty"` // populated by list queries for scoring
}

// WaitlistMatch pairs an entry with its computed priority score and the
// human-readable breakdown of how the score was reached.
type WaitlistMatch struct {
	Entry   WaitlistEntry `json:"entry"`
	Score   int           `json:"score"`
	Reasons []string      `json:"reasons"`
}

// WaitlistStats aggregates entry counts for a campground. Converted folds in
// fulfilled entries, Expired folds in cancelled ones.
type WaitlistStats struct {
	Active    int `json:"active"`
	Offered   int `json:"offered"`
	Converted int `json:"converted"`
	Expired   int `json:"expired"`
	Total     int `json:"total"`
}
