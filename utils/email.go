package utils

import (
	"bytes"
	"html/template"
	"log"
	"strconv"

	"movieflix/config"

	"gopkg.in/gomail.v2"
)

// BookingConfirmationData feeds the confirmation email template.
type BookingConfirmationData struct {
	ReceiptNumber string
	MovieTitle    string
	ShowTime      string
	ShowDate      string
	Seats         string
	TotalAmount   float64
	TransactionId string
}

var confirmationTmpl = template.Must(template.New("booking_confirmation").Parse(`
<h2>Your booking is confirmed</h2>
<p>Receipt <strong>{{.ReceiptNumber}}</strong></p>
<p>{{.MovieTitle}} &middot; {{.ShowDate}} {{.ShowTime}}</p>
<p>Seats: {{.Seats}}</p>
<p>Amount paid: ₹{{.TotalAmount}} (txn {{.TransactionId}})</p>
`))

// SendBookingConfirmationEmail sends the receipt to the customer (async).
func SendBookingConfirmationEmail(to string, data BookingConfirmationData) {
	go func() {
		var body bytes.Buffer
		if err := confirmationTmpl.Execute(&body, data); err != nil {
			log.Printf("Error rendering confirmation email: %v", err)
			return
		}

		host := config.Config("SMTP_HOST")
		if host == "" {
			// Mail not configured, skip silently (local/dev)
			return
		}
		port, _ := strconv.Atoi(config.ConfigOr("SMTP_PORT", "587"))
		username := config.Config("SMTP_USERNAME")
		password := config.Config("SMTP_PASSWORD")
		from := config.Config("SMTP_FROM")

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Booking confirmed: "+data.ReceiptNumber)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Error sending confirmation email: %v", err)
		}
	}()
}
