package domain

import "time"

type UserRole string

const (
	UserRoleOwner   UserRole = "owner"
	UserRoleManager UserRole = "manager"
	UserRoleStaff   UserRole = "staff"
)

// User is a staff member of a campground. Guests are modelled separately;
// only staff authenticate against this backend.
type User struct {
	ID           string    `json:"id"`
	CampgroundID string    `json:"campground_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
