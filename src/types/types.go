package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type JSONB map[string]any

func (a JSONB) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONB) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

type ServiceType string

const (
	SERVICE_PORTER  ServiceType = "porter"
	SERVICE_HIRE    ServiceType = "hire"
	SERVICE_AIRPORT ServiceType = "airport"
	SERVICE_DOCTOR  ServiceType = "doctor"
	SERVICE_DINNER  ServiceType = "dinner"
)

var ServiceTypes = []ServiceType{SERVICE_PORTER, SERVICE_HIRE, SERVICE_AIRPORT, SERVICE_DOCTOR, SERVICE_DINNER}

func (s ServiceType) Valid() bool {
	switch s {
	case SERVICE_PORTER, SERVICE_HIRE, SERVICE_AIRPORT, SERVICE_DOCTOR, SERVICE_DINNER:
		return true
	}
	return false
}

// DisplayName is the human-facing service name used in confirmation emails.
func (s ServiceType) DisplayName() string {
	switch s {
	case SERVICE_PORTER:
		return "Luggage Porter"
	case SERVICE_HIRE:
		return "Car Hire"
	case SERVICE_AIRPORT:
		return "Airport Transfer"
	case SERVICE_DOCTOR:
		return "Doctor Consultation"
	case SERVICE_DINNER:
		return "Dinner Tour"
	}
	return string(s)
}

type BookingStatus string

const (
	BOOKING_PENDING     BookingStatus = "pending"
	BOOKING_CONFIRMED   BookingStatus = "confirmed"
	BOOKING_IN_PROGRESS BookingStatus = "in_progress"
	BOOKING_COMPLETED   BookingStatus = "completed"
	BOOKING_CANCELLED   BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BOOKING_PENDING, BOOKING_CONFIRMED, BOOKING_IN_PROGRESS, BOOKING_COMPLETED, BOOKING_CANCELLED:
		return true
	}
	return false
}

// Terminal reports whether the status has no outgoing transitions.
func (s BookingStatus) Terminal() bool {
	return s == BOOKING_COMPLETED || s == BOOKING_CANCELLED
}

type PaymentStatus string

const (
	PAYMENT_PENDING   PaymentStatus = "pending"
	PAYMENT_COMPLETED PaymentStatus = "completed"
	PAYMENT_FAILED    PaymentStatus = "failed"
	PAYMENT_REFUNDED  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PAYMENT_PENDING, PAYMENT_COMPLETED, PAYMENT_FAILED, PAYMENT_REFUNDED:
		return true
	}
	return false
}

// DeliveryStatus tracks physical progress of a porter delivery. Separate axis
// from BookingStatus; the latest tracking event is the source of truth.
type DeliveryStatus string

const (
	DELIVERY_PENDING    DeliveryStatus = "pending"
	DELIVERY_ASSIGNED   DeliveryStatus = "assigned"
	DELIVERY_PICKED_UP  DeliveryStatus = "picked_up"
	DELIVERY_IN_TRANSIT DeliveryStatus = "in_transit"
	DELIVERY_DELIVERED  DeliveryStatus = "delivered"
)

func (s DeliveryStatus) Valid() bool {
	switch s {
	case DELIVERY_PENDING, DELIVERY_ASSIGNED, DELIVERY_PICKED_UP, DELIVERY_IN_TRANSIT, DELIVERY_DELIVERED:
		return true
	}
	return false
}

type VehicleType string

const (
	VEHICLE_STANDARD VehicleType = "standard"
	VEHICLE_PREMIUM  VehicleType = "premium"
	VEHICLE_LUXURY   VehicleType = "luxury"
	VEHICLE_VAN      VehicleType = "van"
)

type RentalType string

const (
	RENTAL_HOURLY   RentalType = "hourly"
	RENTAL_HALF_DAY RentalType = "half_day"
	RENTAL_FULL_DAY RentalType = "full_day"
)

type ConsultationType string

const (
	CONSULTATION_VIDEO ConsultationType = "video"
	CONSULTATION_CHAT  ConsultationType = "chat"
	CONSULTATION_PHONE ConsultationType = "phone"
)

type LuggageType string

const (
	LUGGAGE_STANDARD LuggageType = "standard"
	LUGGAGE_LARGE    LuggageType = "large"
)

type CustomerInfo struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

// Service parameter payloads. Exactly one of these is decoded from the
// request's booking_data depending on service_type.
type PorterParams struct {
	PickupHotel  string      `json:"pickup_hotel" binding:"required"`
	DropoffHotel string      `json:"dropoff_hotel" binding:"required"`
	LuggageType  LuggageType `json:"luggage_type" binding:"required"`
	LuggageCount int         `json:"luggage_count" binding:"required,min=1"`
	PickupDate   string      `json:"pickup_date" binding:"required"`
}

type HireParams struct {
	PickupLocation string      `json:"pickup_location" binding:"required"`
	PickupDatetime string      `json:"pickup_datetime" binding:"required"`
	Destination    string      `json:"destination,omitempty"`
	VehicleType    VehicleType `json:"vehicle_type" binding:"required"`
	PassengerCount int         `json:"passenger_count" binding:"required,min=1"`
	RentalType     RentalType  `json:"rental_type" binding:"required"`
	Hours          int         `json:"hours,omitempty"`
}

type AirportParams struct {
	TransferType   string      `json:"transfer_type" binding:"required"`
	PickupLocation string      `json:"pickup_location" binding:"required"`
	PickupDatetime string      `json:"pickup_datetime" binding:"required"`
	FlightNumber   string      `json:"flight_number,omitempty"`
	PassengerCount int         `json:"passenger_count" binding:"required,min=1"`
	LuggageCount   int         `json:"luggage_count,omitempty"`
	VehicleType    VehicleType `json:"vehicle_type,omitempty"`
}

type DoctorParams struct {
	ConsultationType    ConsultationType `json:"consultation_type" binding:"required"`
	Symptoms            string           `json:"symptoms" binding:"required"`
	AppointmentDatetime string           `json:"appointment_datetime" binding:"required"`
	PreferredLanguage   string           `json:"preferred_language,omitempty"`
	UrgencyLevel        string           `json:"urgency_level,omitempty"`
}

type DinnerParams struct {
	TourID              string `json:"tour_id" binding:"required"`
	GroupSize           int    `json:"group_size" binding:"required,min=1"`
	DietaryRestrictions string `json:"dietary_restrictions,omitempty"`
	ScheduledDatetime   string `json:"scheduled_datetime" binding:"required"`
	PickupLocation      string `json:"pickup_location,omitempty"`
	BudgetRange         string `json:"budget_range,omitempty"`
}

type CreateBookingRequestBody struct {
	ServiceType       ServiceType     `json:"service_type" binding:"required"`
	Customer          CustomerInfo    `json:"customer" binding:"required"`
	BookingData       json.RawMessage `json:"booking_data" binding:"required"`
	ScheduledDatetime *string         `json:"scheduled_datetime,omitempty" binding:"omitempty,bookabledate"`
	SpecialRequests   string          `json:"special_requests,omitempty"`
}

type UpdateBookingStatusRequestBody struct {
	Status BookingStatus `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequestBody struct {
	Status      PaymentStatus `json:"status" binding:"required"`
	ReferenceID string        `json:"reference_id,omitempty"`
}

type AppendTrackingEventRequestBody struct {
	EventType   DeliveryStatus `json:"event_type" binding:"required"`
	Description string         `json:"description" binding:"required"`
	Location    string         `json:"location,omitempty"`
	PhotoURL    string         `json:"photo_url,omitempty"`
	DriverID    string         `json:"driver_id,omitempty"`
}

type CreatePaymentIntentRequestBody struct {
	Amount        int64  `json:"amount" binding:"required,min=1"`
	Currency      string `json:"currency,omitempty"`
	BookingID     string `json:"bookingId" binding:"required"`
	CustomerEmail string `json:"customerEmail,omitempty"`
}

type SendEmailRequestBody struct {
	To      string `json:"to" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	HTML    string `json:"html" binding:"required"`
	From    string `json:"from,omitempty"`
}

type CreateLegacyBookingRequestBody struct {
	CustomerName   string      `json:"customer_name" binding:"required"`
	CustomerEmail  string      `json:"customer_email" binding:"required,email"`
	CustomerPhone  string      `json:"customer_phone" binding:"required"`
	PickupHotelID  uint        `json:"pickup_hotel" binding:"required"`
	DropoffHotelID uint        `json:"dropoff_hotel" binding:"required"`
	LuggageType    LuggageType `json:"luggage_type" binding:"required"`
	LuggageCount   int         `json:"luggage_count" binding:"required,min=1"`
	PickupDate     string      `json:"pickup_date" binding:"required"`
}

type BookingNumberURIParams struct {
	Number string `uri:"number" binding:"required"`
}

type BookingIDURIParams struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type AdminBookingsQueryFilters struct {
	Search      string `form:"search"`
	ServiceType string `form:"service_type"`
	Status      string `form:"status"`
	DateRange   string `form:"date_range"`
}

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}
