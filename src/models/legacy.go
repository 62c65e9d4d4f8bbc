package models

import (
	"tabiway/src/types"
	"time"

	"github.com/google/uuid"
)

// Legacy porter-only flow. The original hotel-to-hotel luggage transfer kept
// its own tables (bookings/hotels/qr_codes) before the unified aggregate
// existed, and the pickup/delivery pages still read them.

type Hotel struct {
	ID      uint   `gorm:"primarykey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address,omitempty"`
	Area    string `json:"area,omitempty"`

	types.Timestamps
}

type LegacyBooking struct {
	ID             uuid.UUID           `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	BookingNumber  string              `gorm:"uniqueIndex;not null" json:"booking_number"`
	CustomerName   string              `json:"customer_name"`
	CustomerEmail  string              `json:"customer_email"`
	CustomerPhone  string              `json:"customer_phone"`
	PickupHotelID  uint                `json:"pickup_hotel_id"`
	DropoffHotelID uint                `json:"dropoff_hotel_id"`
	LuggageType    types.LuggageType   `json:"luggage_type"`
	LuggageCount   int                 `json:"luggage_count"`
	PickupDate     time.Time           `json:"pickup_date"`
	TotalAmount    int64               `json:"total_amount"`
	Status         types.BookingStatus `gorm:"default:'pending'" json:"status"`

	PickupHotel  Hotel `gorm:"foreignKey:pickup_hotel_id" json:"pickup_hotel,omitempty"`
	DropoffHotel Hotel `gorm:"foreignKey:dropoff_hotel_id" json:"dropoff_hotel,omitempty"`

	types.Timestamps
}

func (LegacyBooking) TableName() string { return "bookings" }

// QRCode stores the drop-off verification code generated for a legacy
// booking. FilePath points at the rendered image on local disk.
type QRCode struct {
	ID        uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"booking_id"`
	Payload   string    `json:"payload"`
	FilePath  string    `json:"file_path,omitempty"`

	Booking LegacyBooking `gorm:"foreignKey:booking_id" json:"-"`

	types.Timestamps
}
