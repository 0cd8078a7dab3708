package services

import (
	"fmt"
	"net/smtp"
	"os"

	"github.com/test-kooza/rental-management-system-sub001/constants"
	"github.com/test-kooza/rental-management-system-sub001/models"
)

// SMTPMailer sends plain-text booking emails through an SMTP relay.
type SMTPMailer struct {
	host     string
	port     string
	from     string
	password string
}

// NewSMTPMailerFromEnv reads the SMTP_* env vars. Returns nil when no relay
// is configured, which the reservation service treats as "email disabled".
func NewSMTPMailerFromEnv() *SMTPMailer {
	host := os.Getenv("SMTP_HOST")
	from := os.Getenv("SMTP_FROM")
	if host == "" || from == "" {
		return nil
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	return &SMTPMailer{
		host:     host,
		port:     port,
		from:     from,
		password: os.Getenv("SMTP_PASSWORD"),
	}
}

// SendBookingConfirmation emails the guest the confirmed booking snapshot.
func (m *SMTPMailer) SendBookingConfirmation(booking *models.Booking) error {
	if booking.Guest == nil || booking.Guest.Email == "" {
		return fmt.Errorf("booking %d has no guest email", booking.ID)
	}

	subject := fmt.Sprintf("Booking confirmed - %s", booking.BookingNumber)
	body := BuildConfirmationBody(booking)

	message := []byte("From: " + m.from + "\r\n" +
		"To: " + booking.Guest.Email + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n\r\n" +
		body)

	auth := smtp.PlainAuth("", m.from, m.password, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{booking.Guest.Email}, message)
}

// BuildConfirmationBody renders the confirmation email text with the full
// booking, property and guest snapshot.
func BuildConfirmationBody(booking *models.Booking) string {
	guestName := ""
	if booking.Guest != nil {
		guestName = booking.Guest.Name
	}

	return fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your booking %s is confirmed.\n\n"+
			"Property: %s\n"+
			"Address: %s, %s\n"+
			"Check-in: %s\n"+
			"Check-out: %s\n"+
			"Guests: %d adults, %d children, %d infants\n"+
			"Total: %s %s\n\n"+
			"We wish you a pleasant stay.\n",
		guestName,
		booking.BookingNumber,
		booking.Property.Name,
		booking.Property.Address, booking.Property.City,
		booking.CheckInDate.Format(constants.DateLayout),
		booking.CheckOutDate.Format(constants.DateLayout),
		booking.Adults, booking.Children, booking.Infants,
		FormatAmount(booking.TotalAmount, booking.Currency), booking.Currency,
	)
}
