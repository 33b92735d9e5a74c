package domain

import "time"

type TillSessionStatus string

const (
	TillSessionStatusOpen   TillSessionStatus = "open"
	TillSessionStatusClosed TillSessionStatus = "closed"
)

type TillMovementType string

const (
	TillMovementCashSale   TillMovementType = "cash_sale"
	TillMovementCashRefund TillMovementType = "cash_refund"
	TillMovementPaidIn     TillMovementType = "paid_in"
	TillMovementPaidOut    TillMovementType = "paid_out"
	TillMovementAdjustment TillMovementType = "adjustment"
)

// TillSession is one cash-drawer shift at a terminal, from open to close.
// At most one open session may exist per (campground, terminal) pair; the
// tills table enforces that with a partial unique index.
type TillSession struct {
	ID                string            `json:"id"`
	CampgroundID      string            `json:"campground_id"`
	TerminalID        *string           `json:"terminal_id,omitempty"`
	Status            TillSessionStatus `json:"status"`
	OpeningFloatCents int64             `json:"opening_float_cents"`
	Currency          string            `json:"currency"`
	Notes             string            `json:"notes,omitempty"`
	OpenedByUserID    string            `json:"opened_by_user_id"`
	OpenedAt          time.Time         `json:"opened_at"`

	// Set on close.
	ExpectedCloseCents *int64     `json:"expected_close_cents,omitempty"`
	CountedCloseCents  *int64     `json:"counted_close_cents,omitempty"`
	OverShortCents     *int64     `json:"over_short_cents,omitempty"` // positive = over, negative = short
	ClosedByUserID     *string    `json:"closed_by_user_id,omitempty"`
	ClosedAt           *time.Time `json:"closed_at,omitempty"`

	Movements []TillMovement `json:"movements,omitempty"`
}

// TillMovement is one cash event against an open session. Amounts are always
// positive; the type decides whether the cash went into or out of the drawer.
// Movements are never mutated or deleted once recorded.
type TillMovement struct {
	ID           string           `json:"id"`
	SessionID    string           `json:"session_id"`
	Type         TillMovementType `json:"type"`
	AmountCents  int64            `json:"amount_cents"`
	Currency     string           `json:"currency"`
	ActorUserID  string           `json:"actor_user_id"`
	Note         string           `json:"note,omitempty"`
	SourceCartID *string          `json:"source_cart_id,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}
