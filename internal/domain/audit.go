package domain

import "time"

// AuditLog is an append-only record of a staff action against an entity.
type AuditLog struct {
	ID           string    `json:"id"`
	CampgroundID string    `json:"campground_id"`
	ActorUserID  string    `json:"actor_user_id"`
	Action       string    `json:"action"`
	EntityType   string    `json:"entity_type"`
	EntityID     string    `json:"entity_id"`
	Detail       string    `json:"detail,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
