package mailer

import (
	"log"
	"os"
	"tabiway/src/lib"
	"tabiway/src/models"
	"tabiway/src/utils"
)

func fromAddress() string {
	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = "bookings@tabiway.example.com"
	}
	return from
}

// SendBookingConfirmation delivers the confirmation email for a new booking.
// Best-effort: any failure is logged and swallowed so the create path never
// fails on a notification problem.
func SendBookingConfirmation(booking *models.UnifiedBooking) {
	input := &lib.SendMailInput{
		From:     fromAddress(),
		FromName: "Tabiway Bookings",
		To:       []string{booking.CustomerEmail},
		Subject:  "Booking Confirmation - " + booking.BookingNumber,
		Body:     utils.ConfirmationEmailBody(booking),
		Html:     true,
	}
	if err := lib.SendMail(input); err != nil {
		log.Printf("[mailer] Could not send confirmation for %s: %s\n", booking.BookingNumber, err.Error())
	}
}

// SendBookingReminder delivers the 24h-before reminder. Best-effort, same
// policy as confirmations.
func SendBookingReminder(booking *models.UnifiedBooking) {
	input := &lib.SendMailInput{
		From:     fromAddress(),
		FromName: "Tabiway Bookings",
		To:       []string{booking.CustomerEmail},
		Subject:  "Reminder: upcoming booking " + booking.BookingNumber,
		Body:     utils.ReminderEmailBody(booking),
		Html:     true,
	}
	if err := lib.SendMail(input); err != nil {
		log.Printf("[mailer] Could not send reminder for %s: %s\n", booking.BookingNumber, err.Error())
	}
}
