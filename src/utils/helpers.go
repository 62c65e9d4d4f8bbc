package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"tabiway/src/models"
	"tabiway/src/types"
	"time"
)

// GenerateBookingNumber builds a human-facing booking identifier:
// 3-letter uppercased service prefix + last 8 digits of unix millis +
// zero-padded 3-digit random suffix. Uniqueness is enforced by the database
// index on booking_number; callers retry on a constraint violation.
func GenerateBookingNumber(serviceType types.ServiceType) string {
	prefix := strings.ToUpper(string(serviceType))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}
	return fmt.Sprintf("%s%s%03d", prefix, millis, rand.Intn(1000))
}

// ConfirmationEmailBody renders the fixed HTML template sent after a booking
// is created.
func ConfirmationEmailBody(booking *models.UnifiedBooking) string {
	return fmt.Sprintf(`<html>
<body style="font-family: sans-serif; color: #333;">
	<h2>Booking Confirmation</h2>
	<p>Dear %s,</p>
	<p>Thank you for your booking. Here are your details:</p>
	<table cellpadding="6">
		<tr><td><b>Booking Number</b></td><td>%s</td></tr>
		<tr><td><b>Service</b></td><td>%s</td></tr>
		<tr><td><b>Total Amount</b></td><td>&yen;%d</td></tr>
		<tr><td><b>Booked At</b></td><td>%s</td></tr>
	</table>
	<p>You can track your booking anytime with your booking number.</p>
	<p>Tabiway Travel Services</p>
</body>
</html>`,
		booking.CustomerName,
		booking.BookingNumber,
		booking.ServiceType.DisplayName(),
		booking.TotalAmount,
		booking.CreatedAt.Format("2006-01-02 15:04"),
	)
}

// ReminderEmailBody renders the HTML template for the 24h-before reminder.
func ReminderEmailBody(booking *models.UnifiedBooking) string {
	scheduled := ""
	if booking.ScheduledDatetime != nil {
		scheduled = booking.ScheduledDatetime.Format("2006-01-02 15:04")
	}
	return fmt.Sprintf(`<html>
<body style="font-family: sans-serif; color: #333;">
	<h2>Upcoming Booking Reminder</h2>
	<p>Dear %s,</p>
	<p>This is a reminder of your %s booking <b>%s</b> scheduled for %s.</p>
	<p>Tabiway Travel Services</p>
</body>
</html>`,
		booking.CustomerName,
		booking.ServiceType.DisplayName(),
		booking.BookingNumber,
		scheduled,
	)
}
