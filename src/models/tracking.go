package models

import (
	"tabiway/src/types"
	"time"

	"github.com/google/uuid"
)

// TrackingEvent is append-only. Rows are never mutated or deleted; the
// customer tracking view derives its delivery status from the latest event.
type TrackingEvent struct {
	ID          uuid.UUID            `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	BookingID   uuid.UUID            `gorm:"type:uuid;not null;index" json:"booking_id"`
	EventType   types.DeliveryStatus `gorm:"not null" json:"event_type"`
	Description string               `json:"description"`
	Location    string               `json:"location,omitempty"`
	PhotoURL    string               `json:"photo_url,omitempty"`
	DriverID    string               `json:"driver_id,omitempty"`
	Timestamp   time.Time            `gorm:"autoCreateTime:nano;index" json:"timestamp"`

	Booking UnifiedBooking `gorm:"foreignKey:booking_id" json:"-"`
}
