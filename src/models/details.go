package models

import (
	"tabiway/src/types"
	"time"

	"github.com/google/uuid"
)

// Detail rows are created in the same transaction as the UnifiedBooking they
// extend and are never updated or deleted on their own.

type HireBookingDetail struct {
	ID             uuid.UUID         `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	BookingID      uuid.UUID         `gorm:"type:uuid;not null" json:"booking_id"`
	PickupLocation string            `json:"pickup_location"`
	PickupDatetime time.Time         `json:"pickup_datetime"`
	Destination    string            `json:"destination,omitempty"`
	VehicleType    types.VehicleType `json:"vehicle_type"`
	PassengerCount int               `json:"passenger_count"`
	RentalType     types.RentalType  `json:"rental_type"`

	Booking UnifiedBooking `gorm:"foreignKey:booking_id" json:"-"`

	types.Timestamps
}

type AirportBookingDetail struct {
	ID             uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	BookingID      uuid.UUID `gorm:"type:uuid;not null" json:"booking_id"`
	TransferType   string    `json:"transfer_type"`
	PickupLocation string    `json:"pickup_location"`
	PickupDatetime time.Time `json:"pickup_datetime"`
	FlightNumber   string    `json:"flight_number,omitempty"`
	PassengerCount int       `json:"passenger_count"`
	LuggageCount   int       `json:"luggage_count"`

	Booking UnifiedBooking `gorm:"foreignKey:booking_id" json:"-"`

	types.Timestamps
}

type DoctorBookingDetail struct {
	ID                  uuid.UUID              `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	BookingID           uuid.UUID              `gorm:"type:uuid;not null" json:"booking_id"`
	ConsultationType    types.ConsultationType `json:"consultation_type"`
	Symptoms            string                 `json:"symptoms"`
	AppointmentDatetime time.Time              `json:"appointment_datetime"`
	PreferredLanguage   string                 `json:"preferred_language,omitempty"`
	UrgencyLevel        string                 `json:"urgency_level,omitempty"`

	Booking UnifiedBooking `gorm:"foreignKey:booking_id" json:"-"`

	types.Timestamps
}

type DinnerBookingDetail struct {
	ID                  uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	BookingID           uuid.UUID `gorm:"type:uuid;not null" json:"booking_id"`
	TourID              string    `json:"tour_id"`
	GroupSize           int       `json:"group_size"`
	DietaryRestrictions string    `json:"dietary_restrictions,omitempty"`
	ScheduledDatetime   time.Time `json:"scheduled_datetime"`
	PickupLocation      string    `json:"pickup_location,omitempty"`
	BudgetRange         string    `json:"budget_range,omitempty"`

	Booking UnifiedBooking `gorm:"foreignKey:booking_id" json:"-"`

	types.Timestamps
}
