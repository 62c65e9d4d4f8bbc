package models

import (
	"tabiway/src/types"
	"time"

	"github.com/google/uuid"
)

// UnifiedBooking is the single canonical booking record for all five service
// types. Service-specific fields live on the detail row created alongside it;
// BookingData keeps the raw decoded payload for display purposes only.
type UnifiedBooking struct {
	ID            uuid.UUID         `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	BookingNumber string            `gorm:"uniqueIndex;not null" json:"booking_number"`
	ServiceType   types.ServiceType `gorm:"not null" json:"service_type"`

	CustomerID    *uuid.UUID `gorm:"type:uuid" json:"customer_id,omitempty"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	CustomerPhone string     `json:"customer_phone"`

	BookingData       types.JSONB         `json:"booking_data,omitempty"`
	TotalAmount       int64               `json:"total_amount"`
	ScheduledDatetime *time.Time          `json:"scheduled_datetime,omitempty"`
	SpecialRequests   string              `json:"special_requests,omitempty"`
	BookingStatus     types.BookingStatus `gorm:"default:'pending'" json:"booking_status"`
	PaymentStatus     types.PaymentStatus `gorm:"default:'pending'" json:"payment_status"`

	TrackingEvents []TrackingEvent `gorm:"foreignKey:booking_id" json:"tracking_events,omitempty"`

	types.Timestamps
}
