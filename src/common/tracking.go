package common

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"tabiway/src/db"
	"tabiway/src/lib"
	"tabiway/src/models"
	"tabiway/src/types"

	"github.com/google/uuid"
)

// AppendTrackingEvent inserts a new event for a booking and pushes it to the
// per-booking live channel. Events are never updated or deleted.
func AppendTrackingEvent(ctx context.Context, bookingID uuid.UUID, params *types.AppendTrackingEventRequestBody) (*models.TrackingEvent, error) {
	if !params.EventType.Valid() {
		return nil, fmt.Errorf("%w: unknown event type %q", ErrValidation, params.EventType)
	}
	gdb := db.GetDb().WithContext(ctx)
	if _, err := getBookingByID(gdb, bookingID); err != nil {
		return nil, err
	}
	event := models.TrackingEvent{
		BookingID:   bookingID,
		EventType:   params.EventType,
		Description: params.Description,
		Location:    params.Location,
		PhotoURL:    params.PhotoURL,
		DriverID:    params.DriverID,
	}
	if err := gdb.Create(&event).Error; err != nil {
		log.Printf("Could not append tracking event for %s: %s\n", bookingID, err.Error())
		return nil, err
	}

	if payload, err := json.Marshal(&event); err == nil {
		go lib.PublishTrackingEvent(bookingID.String(), string(payload))
	}
	go lib.PublishBookingsChanged(bookingID.String())

	return &event, nil
}

// ListTrackingEvents returns a booking's events ordered by timestamp
// ascending. Re-querying returns the same prefix plus any new events.
func ListTrackingEvents(ctx context.Context, bookingID uuid.UUID) ([]models.TrackingEvent, error) {
	gdb := db.GetDb().WithContext(ctx)
	var events []models.TrackingEvent
	err := gdb.
		Model(&models.TrackingEvent{}).
		Where("booking_id = ?", bookingID).
		Order("timestamp asc").
		Find(&events).
		Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// DeliveryStatusOf derives the simplified customer-facing delivery status
// from the latest event; a booking with no events is pending.
func DeliveryStatusOf(events []models.TrackingEvent) types.DeliveryStatus {
	if len(events) == 0 {
		return types.DELIVERY_PENDING
	}
	return events[len(events)-1].EventType
}
