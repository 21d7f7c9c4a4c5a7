package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"time"

	"github.com/rs/zerolog"
)

// Mailer defines the interface for outbound transactional email
type Mailer interface {
	SendEnrollmentWelcome(toEmail, toName, planTitle string, price float64, startDate, endDate time.Time) error
	SendHelpOrderAnswer(toEmail, toName, question, answer string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      string
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
}

// SMTPMailer implements Mailer over net/smtp
type SMTPMailer struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(config SMTPConfig, logger zerolog.Logger) *SMTPMailer {
	return &SMTPMailer{
		config: config,
		logger: logger,
	}
}

// SendEnrollmentWelcome sends the welcome email after an enrollment is created
func (s *SMTPMailer) SendEnrollmentWelcome(toEmail, toName, planTitle string, price float64, startDate, endDate time.Time) error {
	// Without SMTP credentials, log the email instead of sending (development)
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("plan", planTitle).
			Msg("SMTP credentials not configured - enrollment welcome email not sent.")
		return nil
	}

	subject := "Welcome to GymPoint"

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Welcome to GymPoint!</h2>
				<p>Hello %s,</p>
				<p>Your enrollment in the <strong>%s</strong> plan is confirmed.</p>

				<ul>
					<li>Start date: %s</li>
					<li>End date: %s</li>
					<li>Total price: %.2f</li>
				</ul>

				<p>See you at the gym!</p>

				<p>Best regards,<br>The GymPoint Team</p>
			</div>
		</body>
		</html>
	`, toName, planTitle, startDate.Format("02/01/2006"), endDate.Format("02/01/2006"), price)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// SendHelpOrderAnswer notifies a student that their question was answered
func (s *SMTPMailer) SendHelpOrderAnswer(toEmail, toName, question, answer string) error {
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Msg("SMTP credentials not configured - answer email not sent.")
		return nil
	}

	subject := "Your question was answered - GymPoint"

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Your question was answered</h2>
				<p>Hello %s,</p>

				<p><strong>Question:</strong></p>
				<p>%s</p>

				<p><strong>Answer:</strong></p>
				<p>%s</p>

				<p>Best regards,<br>The GymPoint Team</p>
			</div>
		</body>
		</html>
	`, toName, question, answer)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// sendHTMLEmail sends an HTML email
func (s *SMTPMailer) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth(
		"",
		s.config.Username,
		s.config.Password,
		s.config.Host,
	)

	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	headers["To"] = toEmail
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + htmlBody

	serverAddress := s.config.Host + ":" + s.config.Port

	if s.config.UseTLS {
		tlsConfig := &tls.Config{
			ServerName: s.config.Host,
		}

		conn, err := tls.Dial("tcp", serverAddress, tlsConfig)
		if err != nil {
			s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
			return fmt.Errorf("failed to connect to SMTP server: %w", err)
		}
		defer conn.Close()

		client, err := smtp.NewClient(conn, s.config.Host)
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to create SMTP client")
			return fmt.Errorf("failed to create SMTP client: %w", err)
		}
		defer client.Quit()

		if err = client.Auth(auth); err != nil {
			s.logger.Error().Err(err).Msg("SMTP authentication failed")
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}

		if err = client.Mail(s.config.FromEmail); err != nil {
			return fmt.Errorf("failed to set sender: %w", err)
		}
		if err = client.Rcpt(toEmail); err != nil {
			return fmt.Errorf("failed to set recipient: %w", err)
		}

		w, err := client.Data()
		if err != nil {
			return fmt.Errorf("failed to get data writer: %w", err)
		}
		if _, err = w.Write([]byte(message)); err != nil {
			return fmt.Errorf("failed to write email message: %w", err)
		}
		if err = w.Close(); err != nil {
			return fmt.Errorf("failed to close data writer: %w", err)
		}

		return nil
	}

	err := smtp.SendMail(
		serverAddress,
		auth,
		s.config.FromEmail,
		[]string{toEmail},
		[]byte(message),
	)
	if err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
