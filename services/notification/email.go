package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"savora/config"
	"savora/models"
	"savora/utils"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// EmailService defines methods for sending transactional email.
type EmailService interface {
	SendWelcomeEmail(ctx context.Context, toEmail, fullName string) error
	SendReservationConfirmation(ctx context.Context, toEmail, fullName string, reservation *models.Reservation) error
	SendReservationReminder(ctx context.Context, toEmail, fullName string, reservation *models.Reservation) error
	SendCancellationEmail(ctx context.Context, toEmail, fullName string, reservation *models.Reservation) error
}

// ResendEmailService is the production implementation backed by Resend.
// An empty API key disables sending; every method becomes a logged no-op so
// registration and booking never fail on email trouble.
type ResendEmailService struct {
	client   *resend.Client
	from     string
	fromName string
}

func NewResendEmailService() *ResendEmailService {
	svc := &ResendEmailService{
		from:     config.AppConfig.FromEmail,
		fromName: config.AppConfig.FromName,
	}
	if key := config.AppConfig.ResendAPIKey; key != "" {
		svc.client = resend.NewClient(key)
	} else {
		utils.GetLogger().Warn("RESEND_API_KEY not set, email sending disabled")
	}
	return svc
}

func (s *ResendEmailService) send(toEmail, subject, tmplName, tmplBody string, data any) error {
	logger := utils.GetLogger()
	if s.client == nil {
		logger.Info("email sending disabled, skipping",
			zap.String("to", toEmail), zap.String("subject", subject))
		return nil
	}

	tmpl, err := template.New(tmplName).Parse(tmplBody)
	if err != nil {
		return fmt.Errorf("failed to parse %s template: %w", tmplName, err)
	}
	var html bytes.Buffer
	if err := tmpl.Execute(&html, data); err != nil {
		return fmt.Errorf("failed to execute %s template: %w", tmplName, err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.from),
		To:      []string{toEmail},
		Subject: subject,
		Html:    html.String(),
	}
	if _, err := s.client.Emails.Send(params); err != nil {
		logger.Error("failed to send email",
			zap.Error(err), zap.String("to", toEmail), zap.String("subject", subject))
		return fmt.Errorf("email send failed: %w", err)
	}

	logger.Info("email sent", zap.String("to", toEmail), zap.String("subject", subject))
	return nil
}

// SendWelcomeEmail greets a newly registered user.
func (s *ResendEmailService) SendWelcomeEmail(_ context.Context, toEmail, fullName string) error {
	return s.send(toEmail, "Welcome to Savora!", "welcome", welcomeEmailTemplate, map[string]string{
		"FullName": fullName,
	})
}

// SendReservationConfirmation confirms a booked table.
func (s *ResendEmailService) SendReservationConfirmation(_ context.Context, toEmail, fullName string, reservation *models.Reservation) error {
	subject := fmt.Sprintf("Reservation Confirmed at %s", reservation.RestaurantName)
	return s.send(toEmail, subject, "confirmation", confirmationEmailTemplate, map[string]any{
		"FullName":       fullName,
		"RestaurantName": reservation.RestaurantName,
		"Date":           reservation.Date,
		"Time":           reservation.Time,
		"Guests":         reservation.Guests,
		"ReservationID":  reservation.ID,
	})
}

// SendReservationReminder nudges the guest shortly before their table time.
func (s *ResendEmailService) SendReservationReminder(_ context.Context, toEmail, fullName string, reservation *models.Reservation) error {
	subject := fmt.Sprintf("Reminder: your table at %s", reservation.RestaurantName)
	return s.send(toEmail, subject, "reminder", reminderEmailTemplate, map[string]any{
		"FullName":       fullName,
		"RestaurantName": reservation.RestaurantName,
		"Date":           reservation.Date,
		"Time":           reservation.Time,
		"Guests":         reservation.Guests,
	})
}

// SendCancellationEmail acknowledges a cancelled reservation.
func (s *ResendEmailService) SendCancellationEmail(_ context.Context, toEmail, fullName string, reservation *models.Reservation) error {
	subject := fmt.Sprintf("Reservation Cancelled at %s", reservation.RestaurantName)
	return s.send(toEmail, subject, "cancellation", cancellationEmailTemplate, map[string]any{
		"FullName":       fullName,
		"RestaurantName": reservation.RestaurantName,
		"Date":           reservation.Date,
		"Time":           reservation.Time,
	})
}

// Template constants
const welcomeEmailTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: sans-serif; background-color: #f7f7f7; color: #333; padding: 20px;">
    <div style="max-width: 600px; margin: 20px auto; background: #fff; padding: 30px; border-radius: 12px;">
        <h1 style="color: #D2691E;">Welcome to Savora, {{.FullName}}!</h1>
        <p>Your account is ready. Browse restaurants, check live opening hours and book a table in seconds.</p>
        <p>You can even book by voice: just say "book a table at your favorite restaurant".</p>
        <p>Bon app&eacute;tit!<br/>The Savora Team</p>
    </div>
</body>
</html>`

const confirmationEmailTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: sans-serif; background-color: #f7f7f7; color: #333; padding: 20px;">
    <div style="max-width: 600px; margin: 20px auto; background: #fff; padding: 30px; border-radius: 12px;">
        <h1 style="color: #2E8B57;">Your table is booked, {{.FullName}}!</h1>
        <p>Here are your reservation details:</p>
        <table style="width: 100%; font-size: 16px; line-height: 1.8;">
            <tr><td><b>Restaurant</b></td><td>{{.RestaurantName}}</td></tr>
            <tr><td><b>Date</b></td><td>{{.Date}}</td></tr>
            <tr><td><b>Time</b></td><td>{{.Time}}</td></tr>
            <tr><td><b>Guests</b></td><td>{{.Guests}}</td></tr>
            <tr><td><b>Booking ID</b></td><td>{{.ReservationID}}</td></tr>
        </table>
        <p>We look forward to seeing you. If your plans change, you can cancel from your reservations page.</p>
    </div>
</body>
</html>`

const reminderEmailTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: sans-serif; background-color: #f7f7f7; color: #333; padding: 20px;">
    <div style="max-width: 600px; margin: 20px auto; background: #fff; padding: 30px; border-radius: 12px;">
        <h1 style="color: #D2691E;">See you soon, {{.FullName}}!</h1>
        <p>Just a reminder about your upcoming reservation:</p>
        <table style="width: 100%; font-size: 16px; line-height: 1.8;">
            <tr><td><b>Restaurant</b></td><td>{{.RestaurantName}}</td></tr>
            <tr><td><b>Date</b></td><td>{{.Date}}</td></tr>
            <tr><td><b>Time</b></td><td>{{.Time}}</td></tr>
            <tr><td><b>Guests</b></td><td>{{.Guests}}</td></tr>
        </table>
        <p>Running late or plans changed? You can cancel from your reservations page.</p>
    </div>
</body>
</html>`

const cancellationEmailTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: sans-serif; background-color: #f7f7f7; color: #333; padding: 20px;">
    <div style="max-width: 600px; margin: 20px auto; background: #fff; padding: 30px; border-radius: 12px;">
        <h1 style="color: #B22222;">Reservation cancelled</h1>
        <p>Hi {{.FullName}}, your reservation at <b>{{.RestaurantName}}</b> on {{.Date}} at {{.Time}} has been cancelled.</p>
        <p>We hope to see you another time.</p>
    </div>
</body>
</html>`
