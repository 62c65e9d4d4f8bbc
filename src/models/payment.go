package models

import (
	"tabiway/src/types"
	"time"

	"github.com/google/uuid"
)

// Payment is an append-only ledger entry written when a booking's payment
// status transitions to completed with an external reference. The core never
// reads it back; it exists for accounting.
type Payment struct {
	ID          uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	BookingID   uuid.UUID `gorm:"type:uuid;not null" json:"booking_id"`
	Amount      int64     `json:"amount"`
	Currency    string    `json:"currency"`
	Provider    string    `json:"provider"`
	ReferenceID string    `json:"reference_id"`
	PaidAt      time.Time `json:"paid_at"`

	Booking UnifiedBooking `gorm:"foreignKey:booking_id" json:"-"`

	types.Timestamps
}
