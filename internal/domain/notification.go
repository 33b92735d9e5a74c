package domain

import "time"

type Notification struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	CampgroundID string            `json:"campground_id"`
	Title        string            `json:"title"`
	Message      string            `json:"message"`
	IsRead       bool              `json:"is_read"`
	Attributes   map[string]string `json:"attributes,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}
