package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"tabiway/src/config"
	"tabiway/src/db"
	"tabiway/src/lib"
	"tabiway/src/lib/mailer"
	"tabiway/src/models"
	"tabiway/src/pricing"
	"tabiway/src/types"
	"tabiway/src/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const bookingNumberMaxRetries = 5

// decodedParams carries the typed variant plus everything the aggregate
// needs from it.
type decodedParams struct {
	amount    int64
	scheduled *time.Time
	data      types.JSONB
	detail    func(tx *gorm.DB, bookingID uuid.UUID) error
}

func parseServiceTime(value string) (*time.Time, error) {
	t, err := time.Parse(config.TIME_PARSE_FORMAT, value)
	if err != nil {
		return nil, fmt.Errorf("%w: bad datetime %q", ErrValidation, value)
	}
	return &t, nil
}

func rawToJSONB(raw json.RawMessage) (types.JSONB, error) {
	var m types.JSONB
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: booking_data is not an object", ErrValidation)
	}
	return m, nil
}

// decodeBookingData turns the untyped booking_data payload into the typed
// variant for the service, validates it, and prices it. Validation happens
// here, at the aggregate boundary, so the pricing functions stay pure.
func decodeBookingData(serviceType types.ServiceType, raw json.RawMessage) (*decodedParams, error) {
	data, err := rawToJSONB(raw)
	if err != nil {
		return nil, err
	}
	switch serviceType {
	case types.SERVICE_PORTER:
		var p types.PorterParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
		}
		if p.LuggageCount < 1 {
			return nil, fmt.Errorf("%w: luggage_count must be at least 1", ErrValidation)
		}
		amount, err := pricing.PorterAmount(p.LuggageType, p.LuggageCount)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
		}
		// porter uses a pickup date, not a scheduled datetime
		return &decodedParams{amount: amount, data: data, detail: func(tx *gorm.DB, bookingID uuid.UUID) error { return nil }}, nil

	case types.SERVICE_HIRE:
		var p types.HireParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
		}
		if p.PassengerCount < 1 {
			return nil, fmt.Errorf("%w: passenger_count must be at least 1", ErrValidation)
		}
		if p.RentalType == types.RENTAL_HOURLY && p.Hours < 1 {
			return nil, fmt.Errorf("%w: hours must be at least 1 for hourly rental", ErrValidation)
		}
		amount, err := pricing.HireAmount(p.VehicleType, p.RentalType, p.Hours)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
		}
		scheduled, err := parseServiceTime(p.PickupDatetime)
		if err != nil {
			return nil, err
		}
		return &decodedParams{amount: amount, scheduled: scheduled, data: data, detail: func(tx *gorm.DB, bookingID uuid.UUID) error {
			detail := models.HireBookingDetail{
				BookingID:      bookingID,
				PickupLocation: p.PickupLocation,
				PickupDatetime: *scheduled,
				Destination:    p.Destination,
				VehicleType:    p.VehicleType,
				PassengerCount: p.PassengerCount,
				RentalType:     p.RentalType,
			}
			return tx.Create(&detail).Error
		}}, nil

	case types.SERVICE_AIRPORT:
		var p types.AirportParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
		}
		if p.PassengerCount < 1 {
			return nil, fmt.Errorf("%w: passenger_count must be at least 1", ErrValidation)
		}
		vehicle := p.VehicleType
		if vehicle == "" {
			vehicle = types.VEHICLE_STANDARD
		}
		// airport transfers are flat half-day hires of the chosen vehicle
		amount, err := pricing.HireAmount(vehicle, types.RENTAL_HALF_DAY, 0)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
		}
		scheduled, err := parseServiceTime(p.PickupDatetime)
		if err != nil {
			return nil, err
		}
		return &decodedParams{amount: amount, scheduled: scheduled, data: data, detail: func(tx *gorm.DB, bookingID uuid.UUID) error {
			detail := models.AirportBookingDetail{
				BookingID:      bookingID,
				TransferType:   p.TransferType,
				PickupLocation: p.PickupLocation,
				PickupDatetime: *scheduled,
				FlightNumber:   p.FlightNumber,
				PassengerCount: p.PassengerCount,
				LuggageCount:   p.LuggageCount,
			}
			return tx.Create(&detail).Error
		}}, nil

	case types.SERVICE_DOCTOR:
		var p types.DoctorParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
		}
		if strings.TrimSpace(p.Symptoms) == "" {
			return nil, fmt.Errorf("%w: symptoms are required", ErrValidation)
		}
		amount, err := pricing.DoctorAmount(p.ConsultationType)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
		}
		scheduled, err := parseServiceTime(p.AppointmentDatetime)
		if err != nil {
			return nil, err
		}
		return &decodedParams{amount: amount, scheduled: scheduled, data: data, detail: func(tx *gorm.DB, bookingID uuid.UUID) error {
			detail := models.DoctorBookingDetail{
				BookingID:           bookingID,
				ConsultationType:    p.ConsultationType,
				Symptoms:            p.Symptoms,
				AppointmentDatetime: *scheduled,
				PreferredLanguage:   p.PreferredLanguage,
				UrgencyLevel:        p.UrgencyLevel,
			}
			return tx.Create(&detail).Error
		}}, nil

	case types.SERVICE_DINNER:
		var p types.DinnerParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
		}
		if p.GroupSize < 1 {
			return nil, fmt.Errorf("%w: group_size must be at least 1", ErrValidation)
		}
		amount, err := pricing.DinnerAmount(p.TourID, p.GroupSize)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
		}
		scheduled, err := parseServiceTime(p.ScheduledDatetime)
		if err != nil {
			return nil, err
		}
		return &decodedParams{amount: amount, scheduled: scheduled, data: data, detail: func(tx *gorm.DB, bookingID uuid.UUID) error {
			detail := models.DinnerBookingDetail{
				BookingID:           bookingID,
				TourID:              p.TourID,
				GroupSize:           p.GroupSize,
				DietaryRestrictions: p.DietaryRestrictions,
				ScheduledDatetime:   *scheduled,
				PickupLocation:      p.PickupLocation,
				BudgetRange:         p.BudgetRange,
			}
			return tx.Create(&detail).Error
		}}, nil
	}
	return nil, fmt.Errorf("%w: unknown service type %q", ErrValidation, serviceType)
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key")
}

// CreateBooking validates and prices the request, then writes the aggregate
// and its detail row in one transaction. The confirmation email is
// fire-and-forget; a notification failure never fails the booking.
func CreateBooking(ctx context.Context, params *types.CreateBookingRequestBody, customerID *uuid.UUID) (*models.UnifiedBooking, error) {
	if !params.ServiceType.Valid() {
		return nil, fmt.Errorf("%w: unknown service type %q", ErrValidation, params.ServiceType)
	}
	decoded, err := decodeBookingData(params.ServiceType, params.BookingData)
	if err != nil {
		return nil, err
	}
	scheduled := decoded.scheduled
	if params.ScheduledDatetime != nil {
		if scheduled, err = parseServiceTime(*params.ScheduledDatetime); err != nil {
			return nil, err
		}
	}

	gdb := db.GetDb().WithContext(ctx)
	var booking models.UnifiedBooking
	for attempt := 0; attempt < bookingNumberMaxRetries; attempt++ {
		booking = models.UnifiedBooking{
			BookingNumber:     utils.GenerateBookingNumber(params.ServiceType),
			ServiceType:       params.ServiceType,
			CustomerID:        customerID,
			CustomerName:      params.Customer.Name,
			CustomerEmail:     params.Customer.Email,
			CustomerPhone:     params.Customer.Phone,
			BookingData:       decoded.data,
			TotalAmount:       decoded.amount,
			ScheduledDatetime: scheduled,
			SpecialRequests:   params.SpecialRequests,
			BookingStatus:     types.BOOKING_PENDING,
			PaymentStatus:     types.PAYMENT_PENDING,
		}
		err = gdb.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&booking).Error; err != nil {
				return err
			}
			return decoded.detail(tx, booking.ID)
		})
		if err == nil {
			break
		}
		if isDuplicateKey(err) {
			log.Printf("Booking number collision on %s, retrying (%d)\n", booking.BookingNumber, attempt+1)
			continue
		}
		log.Printf("Could not create booking: %s\n", err.Error())
		return nil, err
	}
	if err != nil {
		log.Printf("Booking number retries exhausted: %s\n", err.Error())
		return nil, ErrRetryExhausted
	}

	go mailer.SendBookingConfirmation(&booking)
	go lib.PublishBookingsChanged(booking.ID.String())

	return &booking, nil
}

// GetBookingByNumber is an exact, case-sensitive lookup.
func GetBookingByNumber(ctx context.Context, number string) (*models.UnifiedBooking, error) {
	gdb := db.GetDb().WithContext(ctx)
	var booking models.UnifiedBooking
	err := gdb.
		Model(&models.UnifiedBooking{}).
		Where("booking_number = ?", number).
		First(&booking).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func getBookingByID(tx *gorm.DB, id uuid.UUID) (*models.UnifiedBooking, error) {
	var booking models.UnifiedBooking
	err := tx.
		Model(&models.UnifiedBooking{}).
		Where("id = ?", id).
		First(&booking).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// UpdateBookingStatus moves a booking to newStatus. Any non-terminal booking
// may jump to any other status, matching the admin dashboard's buttons;
// transitions out of a terminal status are rejected.
func UpdateBookingStatus(ctx context.Context, id uuid.UUID, newStatus types.BookingStatus) (*models.UnifiedBooking, error) {
	if !newStatus.Valid() {
		return nil, fmt.Errorf("%w: unknown booking status %q", ErrValidation, newStatus)
	}
	gdb := db.GetDb().WithContext(ctx)
	var updated *models.UnifiedBooking
	err := gdb.Transaction(func(tx *gorm.DB) error {
		booking, err := getBookingByID(tx, id)
		if err != nil {
			return err
		}
		if booking.BookingStatus.Terminal() {
			return fmt.Errorf("%w: %s", ErrTerminalStatus, booking.BookingStatus)
		}
		// updating through the loaded model keeps its UpdatedAt in sync
		if err := tx.
			Model(booking).
			Update("booking_status", newStatus).
			Error; err != nil {
			return err
		}
		booking.BookingStatus = newStatus
		updated = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if newStatus == types.BOOKING_CONFIRMED {
		scheduleReminder(updated)
	}
	go lib.PublishBookingsChanged(id.String())
	return updated, nil
}

func paymentTransitionAllowed(from, to types.PaymentStatus) bool {
	switch from {
	case types.PAYMENT_PENDING:
		return to == types.PAYMENT_COMPLETED || to == types.PAYMENT_FAILED
	case types.PAYMENT_COMPLETED:
		return to == types.PAYMENT_REFUNDED
	}
	return false
}

// UpdatePaymentStatus moves the payment axis. On a transition to completed
// with an external reference a Payment ledger row is appended in the same
// transaction; the ledger is write-only from the core's perspective.
func UpdatePaymentStatus(ctx context.Context, id uuid.UUID, newStatus types.PaymentStatus, referenceID string) (*models.UnifiedBooking, error) {
	if !newStatus.Valid() {
		return nil, fmt.Errorf("%w: unknown payment status %q", ErrValidation, newStatus)
	}
	gdb := db.GetDb().WithContext(ctx)
	var updated *models.UnifiedBooking
	err := gdb.Transaction(func(tx *gorm.DB) error {
		booking, err := getBookingByID(tx, id)
		if err != nil {
			return err
		}
		if !paymentTransitionAllowed(booking.PaymentStatus, newStatus) {
			return fmt.Errorf("%w: payment %s -> %s", ErrInvalidTransition, booking.PaymentStatus, newStatus)
		}
		if err := tx.
			Model(booking).
			Update("payment_status", newStatus).
			Error; err != nil {
			return err
		}
		if newStatus == types.PAYMENT_COMPLETED && referenceID != "" {
			payment := models.Payment{
				BookingID:   booking.ID,
				Amount:      booking.TotalAmount,
				Currency:    config.DefaultCurrency,
				Provider:    "stripe",
				ReferenceID: referenceID,
				PaidAt:      time.Now(),
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}
		}
		booking.PaymentStatus = newStatus
		updated = booking
		return nil
	})
	if err != nil {
		return nil, err
	}
	go lib.PublishBookingsChanged(id.String())
	return updated, nil
}

// scheduleReminder queues a one-time reminder email 24h before the service.
// Best-effort; bookings less than a day out get no reminder.
func scheduleReminder(booking *models.UnifiedBooking) {
	if booking.ScheduledDatetime == nil {
		return
	}
	runAt := booking.ScheduledDatetime.Add(-24 * time.Hour)
	if runAt.Before(time.Now()) {
		return
	}
	b := *booking
	if _, err := lib.ScheduleOneTimeJob(runAt, func() {
		mailer.SendBookingReminder(&b)
	}); err != nil {
		log.Printf("Could not schedule reminder for %s: %s\n", booking.BookingNumber, err.Error())
	}
}
